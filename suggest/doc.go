// Package suggest matches a (possibly misspelled) string against a
// list of known candidates — the classic "did you mean …?" helper on
// top of the editdist engine.
//
// 🚀 What is suggest?
//
//	Given user input and a candidate list (command names, column
//	names, enum values…), suggest finds the candidates within a
//	bounded edit distance and ranks them:
//	  • Nearest — the single best candidate, earliest wins ties
//	  • All     — every acceptable candidate, closest first
//
// ✨ Key features:
//   - bounded by MaxDistance (default 3, the conventional typo budget)
//   - pluggable metric: Levenshtein (default), Damerau–Levenshtein or
//     Optimal String Alignment
//   - deterministic: candidate order breaks ties, nothing is shuffled
//   - pure functions, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/textdist/suggest"
//
//	name, ok := suggest.Nearest("statis", commands)
//	all := suggest.All("statis", commands,
//	  suggest.WithMaxDistance(2),
//	  suggest.WithMetric(suggest.DamerauLevenshtein),
//	)
//
// Intended for modest candidate lists (flags, commands, identifiers):
// cost is O(len(candidates) · |given| · |candidate|). For thousands of
// candidates, pre-filter by length first.
package suggest
