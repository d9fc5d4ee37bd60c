// Package editdist - named metrics.
//
// The three classic metrics are nothing but fixed cost models fed to
// the generic engine:
//
//	Metric              ins del sub  transpose  final transpose
//	Levenshtein          1   1   1   disabled   disabled
//	DamerauLevenshtein   1   1   1   1          disabled
//	OptimalAlignment     1   1   1   disabled   1
//
// "Disabled" means the channel is structurally skipped by the
// recurrence, so it is never selected. The fixed models are valid by
// construction, so the facades go straight to the unvalidated engine
// path and return plain ints.

package editdist

// Fixed metric configurations, resolved once at package init.
var (
	levenshteinModel        = NewCostModel()
	damerauLevenshteinModel = NewCostModel(WithTransposeCost(1))
	optimalAlignmentModel   = NewCostModel(WithFinalTransposeCost(1))
)

// Levenshtein returns the classic three-operation edit distance: the
// minimum number of rune insertions, deletions and substitutions
// turning source into target. It is a true metric (identity, symmetry,
// triangle inequality all hold).
//
// Complexity: O(len(source)·len(target)) time and memory.
func Levenshtein(source, target string) int {
	return DistanceUnsafe(source, target, levenshteinModel)
}

// DamerauLevenshtein returns the unrestricted Damerau–Levenshtein
// distance: Levenshtein plus adjacent transpositions whose runes may
// participate in further edits afterwards (the reusable channel).
//
// Complexity: O(len(source)·len(target)) time and memory.
func DamerauLevenshtein(source, target string) int {
	return DistanceUnsafe(source, target, damerauLevenshteinModel)
}

// OptimalAlignment returns the Optimal String Alignment distance:
// Levenshtein plus adjacent transpositions under the restriction that
// a swapped pair is never edited again (the sealed channel). Unlike
// DamerauLevenshtein it does not satisfy the triangle inequality.
//
// Complexity: O(len(source)·len(target)) time and memory.
func OptimalAlignment(source, target string) int {
	return DistanceUnsafe(source, target, optimalAlignmentModel)
}

// Similarity returns a normalized Levenshtein score in [0, 1]:
// 1 for identical strings (two empty strings included), 0 for strings
// sharing nothing. The denominator is the rune count of the longer
// string, so the score is length-fair for multi-byte input.
//
// Complexity: O(len(source)·len(target)) time and memory.
func Similarity(source, target string) float64 {
	if source == target {
		return 1
	}

	srcLen := len([]rune(source))
	tgtLen := len([]rune(target))
	maxLen := srcLen
	if tgtLen > maxLen {
		maxLen = tgtLen
	}
	if maxLen == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(source, target))/float64(maxLen)
}
