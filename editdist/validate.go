// Package editdist - cost-model validation.
//
// This file contains the whole Validator: deterministic, side-effect
// free checks of the cost-model invariants, reported as
// ErrInvalidCostModel wrapped with the violated rule and the offending
// values. No logging, no panics on user input.

package editdist

import "fmt"

// Validate checks the cost-model invariants in order and reports the
// first violation; nil means the model is safe for the DP engine.
//
// Contract:
//
//  1. Every supplied cost is ≥ 0. Costs of disabled channels were
//     never supplied and are exempt.
//  2. finalTranspose ≤ transpose — when both channels are enabled.
//  3. insert + delete ≤ 2 × finalTranspose — when the final channel
//     is enabled.
//  4. max(substitute, specialSubstitute) ≤ finalTranspose — when the
//     final channel is enabled (the special cost participates only
//     when the table is enabled).
//
// Invariants 2–4 bound how cheap a sealed transposition can be
// relative to the operations it competes with; they are what lets the
// recurrence reference D[i-2][j-2] directly without re-deriving
// cheaper paths through a swapped pair.
//
// A well-formed special-substitution table (equal from/to rune counts)
// is checked first: a malformed table has no meaningful costs to
// validate.
//
// Complexity: O(1).
func (m CostModel) Validate() error {
	// Stage 0: table shape.
	if m.specialEnabled && len(m.specialFrom) != len(m.specialTo) {
		return fmt.Errorf("%w: special substitution tables differ in length (%d from vs %d to)",
			ErrInvalidCostModel, len(m.specialFrom), len(m.specialTo))
	}

	// Stage 1: non-negativity of every supplied cost.
	if m.insertCost < 0 {
		return fmt.Errorf("%w: insert cost is negative (%d)", ErrInvalidCostModel, m.insertCost)
	}
	if m.deleteCost < 0 {
		return fmt.Errorf("%w: delete cost is negative (%d)", ErrInvalidCostModel, m.deleteCost)
	}
	if m.substituteCost < 0 {
		return fmt.Errorf("%w: substitute cost is negative (%d)", ErrInvalidCostModel, m.substituteCost)
	}
	if m.transposeEnabled && m.transposeCost < 0 {
		return fmt.Errorf("%w: transpose cost is negative (%d)", ErrInvalidCostModel, m.transposeCost)
	}
	if m.finalTransposeEnabled && m.finalTransposeCost < 0 {
		return fmt.Errorf("%w: final transpose cost is negative (%d)", ErrInvalidCostModel, m.finalTransposeCost)
	}
	if m.specialEnabled && m.specialCost < 0 {
		return fmt.Errorf("%w: special substitute cost is negative (%d)", ErrInvalidCostModel, m.specialCost)
	}

	// Stage 2: the sealed channel must not undercut the reusable one.
	if m.transposeEnabled && m.finalTransposeEnabled && m.finalTransposeCost > m.transposeCost {
		return fmt.Errorf("%w: final transpose cost (%d) exceeds transpose cost (%d)",
			ErrInvalidCostModel, m.finalTransposeCost, m.transposeCost)
	}

	// Stages 3–4 bound the sealed transposition from below.
	if m.finalTransposeEnabled {
		// Stage 3: a delete+insert pair must not cost more than two sealed swaps.
		if m.insertCost+m.deleteCost > 2*m.finalTransposeCost {
			return fmt.Errorf("%w: insert cost (%d) plus delete cost (%d) exceeds twice the final transpose cost (%d)",
				ErrInvalidCostModel, m.insertCost, m.deleteCost, m.finalTransposeCost)
		}

		// Stage 4: no substitution may be pricier than a sealed swap.
		maxSub := m.substituteCost
		if m.specialEnabled && m.specialCost > maxSub {
			maxSub = m.specialCost
		}
		if maxSub > m.finalTransposeCost {
			return fmt.Errorf("%w: substitute cost (%d) exceeds final transpose cost (%d)",
				ErrInvalidCostModel, maxSub, m.finalTransposeCost)
		}
	}

	return nil
}
