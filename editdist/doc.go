// Package editdist computes weighted edit distances between strings:
// the minimum total cost of character insertions, deletions,
// substitutions and adjacent transpositions turning one string into
// another, under a caller-supplied integer cost model.
//
// 🚀 What is editdist?
//
//	One generic dynamic-programming engine plus three named
//	specializations of it:
//	  • Levenshtein          — insert / delete / substitute
//	  • DamerauLevenshtein   — + reusable adjacent transpositions
//	  • OptimalAlignment     — + sealed adjacent transpositions
//	It is widely useful for spell checking, fuzzy lookup, "did you
//	mean" suggestions, record linkage and dedup pipelines.
//
// ✨ Key features:
//   - six independent integer costs: insert, delete, substitute,
//     transpose, final transpose, special substitute
//   - optional special-substitution table: a directional rune-pair map
//     with its own cost (e.g. '0'→'O' cheaper than a generic edit)
//   - two transposition channels: sealed (Optimal String Alignment
//     style — a swapped pair is never edited again) and reusable (true
//     Damerau–Levenshtein — swapped runes stay editable)
//   - safe and unsafe entry points: Distance validates the cost model
//     first, DistanceUnsafe trusts the caller and never fails
//   - pure functions: no shared state, any number of concurrent calls
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/textdist/editdist"
//
//	model := editdist.NewCostModel(
//	  editdist.WithSubstituteCost(2),
//	  editdist.WithFinalTransposeCost(2),
//	  editdist.WithSpecialSubstitutions("0O", "O0", 1),
//	)
//
//	dist, err := editdist.Distance("c0de", "code", model)
//
// Costs and results are plain ints; the caller picks a width story by
// keeping max(len(source), len(target)) × max(cost) inside int range.
//
// Performance:
//
//   - Time:   O(len(source)·len(target))
//   - Memory: O(len(source)·len(target)), one grid per call
//
// Errors: only ErrInvalidCostModel, raised by Distance before any DP
// work when the cost model violates the documented invariants.
// DistanceUnsafe never fails; with an inconsistent model its result is
// still a deterministic non-negative integer, just not guaranteed to
// be the true minimum cost.
//
// See example_test.go for worked scenarios.
package editdist
