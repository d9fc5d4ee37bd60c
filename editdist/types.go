// Package editdist - sentinel errors and documented defaults.
//
// This file defines ONLY the package-level sentinel error and the
// default cost constants. All entry points MUST return the sentinel
// (optionally wrapped with offending values) and tests MUST check it
// via errors.Is. No function in this package panics on user input.

package editdist

import "errors"

// ErrInvalidCostModel is returned by Distance (and CostModel.Validate)
// when a cost model violates one of the documented invariants:
//
//  1. every supplied cost is non-negative;
//  2. the final transpose cost does not exceed the transpose cost;
//  3. insert + delete cost does not exceed twice the final transpose cost;
//  4. neither substitute cost exceeds the final transpose cost.
//
// Invariants 2–4 bind only the channels the model actually enables;
// a disabled channel contributes no candidate to the recurrence and is
// exempt. The wrapped message names the violated rule and the
// offending values; match with errors.Is(err, ErrInvalidCostModel).
var ErrInvalidCostModel = errors.New("editdist: invalid cost model")

// DEFAULTS - single source of truth for zero-option behavior.
// NewCostModel() with no options is exactly the Levenshtein
// configuration: unit base costs, both transposition channels and the
// special-substitution table disabled.
const (
	// DefaultInsertCost is the cost of inserting one rune.
	DefaultInsertCost = 1

	// DefaultDeleteCost is the cost of deleting one rune.
	DefaultDeleteCost = 1

	// DefaultSubstituteCost is the cost of substituting one rune for another.
	DefaultSubstituteCost = 1
)
