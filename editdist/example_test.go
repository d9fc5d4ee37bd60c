package editdist_test

import (
	"fmt"

	"github.com/katalvlaran/textdist/editdist"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleLevenshtein
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic three-operation distance on the textbook pair.
//
// Use case:
//
//	Spell checking, fuzzy lookup, dedup — whenever only insertions,
//	deletions and substitutions count.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleLevenshtein() {
	fmt.Println(editdist.Levenshtein("kitten", "sitting"))
	// Output:
	// 3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDamerauLevenshtein
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	"ca" → "abc" separates the two transposition flavors: the
//	reusable channel may keep editing the swapped runes (cost 2),
//	the sealed channel may not (cost 3).
//
// Use case:
//
//	Typo correction where adjacent-key swaps are common.
func ExampleDamerauLevenshtein() {
	fmt.Println(editdist.DamerauLevenshtein("ca", "abc"))
	fmt.Println(editdist.OptimalAlignment("ca", "abc"))
	// Output:
	// 2
	// 3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A fully parameterized model: unit costs, both transposition
//	channels, and an OCR look-alike table (0↔O, 1↔I, L→I) at the
//	special rate.
//
// Use case:
//
//	Matching scanned or hand-typed identifiers where look-alike
//	characters deserve a discount.
func ExampleDistance() {
	model := editdist.NewCostModel(
		editdist.WithTransposeCost(1),
		editdist.WithFinalTransposeCost(1),
		editdist.WithSpecialSubstitutions("01OIIL", "OI01LI", 1),
	)

	dist, err := editdist.Distance("demerau", "levenshtein", model)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dist)
	// Output:
	// 9
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance_invalidModel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A sealed transposition priced above the reusable one violates the
//	cost-model invariants; the safe entry point fails fast, before
//	any DP work.
func ExampleDistance_invalidModel() {
	model := editdist.NewCostModel(
		editdist.WithTransposeCost(3),
		editdist.WithFinalTransposeCost(5),
	)

	_, err := editdist.Distance("ab", "ba", model)
	fmt.Println(err)
	// Output:
	// editdist: invalid cost model: final transpose cost (5) exceeds transpose cost (3)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimilarity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Normalized Levenshtein score in [0, 1] — handy as a ranking
//	signal when a raw edit count is too length-sensitive.
func ExampleSimilarity() {
	fmt.Printf("%.2f\n", editdist.Similarity("kitten", "sitting"))
	fmt.Printf("%.2f\n", editdist.Similarity("same", "same"))
	// Output:
	// 0.57
	// 1.00
}
