// Package textdist is your in-memory toolbox for measuring how far apart
// two strings are — from the classic Levenshtein metric to a fully
// parameterized weighted edit-distance engine.
//
// 🚀 What is textdist?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• A generalized weighted edit-distance engine with caller-supplied
//		  integer costs for insert, delete, substitute, special substitute
//		  and two flavors of adjacent transposition
//		• A cost-model validator that rejects inconsistent cost sets before
//		  any computation starts
//		• Named metrics: Levenshtein, Damerau–Levenshtein and
//		  Optimal String Alignment, all specializations of the same engine
//		• Fuzzy helpers: normalized similarity and "did you mean" candidate
//		  matching
//
// ✨ Why choose textdist?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – identical inputs always produce identical results,
//     safe to call from any number of goroutines
//
// Everything is organized under two subpackages:
//
//	editdist/ — cost models, the weighted DP engine & the named metrics
//	suggest/  — candidate matching ("did you mean …?") on top of editdist
//
// Quick example:
//
//	editdist.Levenshtein("kitten", "sitting")      // 3
//	editdist.DamerauLevenshtein("ab", "ba")        // 1
//	suggest.Nearest("statis", []string{"status", "stats"})
//
// See each subpackage's doc.go for algorithms, contracts and complexity.
package textdist
