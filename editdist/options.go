// Package editdist - functional configuration of cost models.
//
// This file defines:
//   - Option / CostModel (functional options with internal state),
//   - WithX constructors,
//   - NewCostModel, the canonical resolver against documented defaults.
//
// Design principles:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - CostModel fields are unexported; public entry points consume a
//     resolved CostModel value, options apply last-writer-wins.
//   - Constructors never panic and never validate: a nonsensical cost
//     (e.g. a negative one) is a *user* error that Validate must
//     report as ErrInvalidCostModel, not a programmer error.

package editdist

// Option mutates a CostModel under construction. Safe to apply
// repeatedly (idempotent); later options win.
type Option func(*CostModel)

// CostModel is an immutable record of per-operation edit costs plus an
// optional special-substitution table. Build one with NewCostModel and
// reuse it freely: the model carries no per-call state, so a single
// value may serve any number of concurrent Distance calls.
//
// A channel (non-final transposition, final transposition, special
// substitution) participates in the recurrence only when its WithX
// option was supplied; otherwise it contributes no candidate at all.
type CostModel struct {
	// base operation costs
	insertCost     int // DefaultInsertCost
	deleteCost     int // DefaultDeleteCost
	substituteCost int // DefaultSubstituteCost

	// transposition channels (disabled unless enabled via options)
	transposeCost         int  // reusable (Damerau–Levenshtein) channel
	transposeEnabled      bool // set by WithTransposeCost
	finalTransposeCost    int  // sealed (Optimal String Alignment) channel
	finalTransposeEnabled bool // set by WithFinalTransposeCost

	// special-substitution table (disabled unless enabled via options)
	specialCost    int    // cost of a table hit
	specialEnabled bool   // set by WithSpecialSubstitutions
	specialFrom    []rune // source runes, positional
	specialTo      []rune // target runes, positional

	// specialTable is the resolved first-from-wins lookup; a pair
	// (a, b) hits the table iff specialTable[a] == b. Built once in
	// NewCostModel so the DP inner loop performs a single map probe.
	specialTable map[rune]rune
}

// WithInsertCost sets the cost of inserting one rune.
func WithInsertCost(cost int) Option {
	return func(m *CostModel) { m.insertCost = cost }
}

// WithDeleteCost sets the cost of deleting one rune.
func WithDeleteCost(cost int) Option {
	return func(m *CostModel) { m.deleteCost = cost }
}

// WithSubstituteCost sets the cost of substituting one rune for another.
func WithSubstituteCost(cost int) Option {
	return func(m *CostModel) { m.substituteCost = cost }
}

// WithUnitCosts resets insert, delete and substitute to 1 (the
// documented defaults). Handy when composing scaled models in tests.
func WithUnitCosts() Option {
	return func(m *CostModel) {
		m.insertCost = DefaultInsertCost
		m.deleteCost = DefaultDeleteCost
		m.substituteCost = DefaultSubstituteCost
	}
}

// WithTransposeCost enables the reusable (non-final) transposition
// channel at the given cost. The two swapped runes remain eligible for
// further edits — the true Damerau–Levenshtein relaxation.
func WithTransposeCost(cost int) Option {
	return func(m *CostModel) {
		m.transposeCost = cost
		m.transposeEnabled = true
	}
}

// WithFinalTransposeCost enables the sealed (final) transposition
// channel at the given cost. Once a pair is swapped through this
// channel it is fully consumed: no later operation touches either rune
// again — the Optimal String Alignment restriction.
func WithFinalTransposeCost(cost int) Option {
	return func(m *CostModel) {
		m.finalTransposeCost = cost
		m.finalTransposeEnabled = true
	}
}

// WithSpecialSubstitutions enables the special-substitution table:
// substituting from[i] by to[i] (rune-wise, directional,
// case-sensitive) costs `cost` instead of the generic substitute cost.
//
// If the same source rune occurs more than once in from, the first
// occurrence wins and later pairs are ignored. Distance rejects
// tables whose from/to rune counts differ; DistanceUnsafe pairs up to
// the shorter of the two and stays total.
func WithSpecialSubstitutions(from, to string, cost int) Option {
	return func(m *CostModel) {
		m.specialFrom = []rune(from)
		m.specialTo = []rune(to)
		m.specialCost = cost
		m.specialEnabled = true
	}
}

// NewCostModel resolves option setters against the documented defaults
// (last-writer-wins) and builds the special-substitution lookup.
//
// Behavior highlights:
//   - Pure function; the returned model is a self-contained value.
//   - No validation here: call Validate (or use Distance, which does)
//     to check the invariants.
//
// Complexity: O(k + t) for k options and t table pairs.
func NewCostModel(opts ...Option) CostModel {
	m := CostModel{
		insertCost:     DefaultInsertCost,
		deleteCost:     DefaultDeleteCost,
		substituteCost: DefaultSubstituteCost,
		// both transposition channels and the table start disabled
	}
	for _, set := range opts {
		set(&m) // apply in order; last-writer-wins semantics
	}

	finalizeModel(&m)

	return m
}

// finalizeModel derives the resolved lookup table in exactly one
// place. Pairs are taken positionally up to the shorter of from/to
// (the safe path separately rejects unequal lengths); the first pair
// for a given source rune wins.
//
// Complexity: O(t) time and space for t table pairs.
func finalizeModel(m *CostModel) {
	if !m.specialEnabled {
		return
	}

	pairs := len(m.specialFrom)
	if len(m.specialTo) < pairs {
		pairs = len(m.specialTo)
	}

	m.specialTable = make(map[rune]rune, pairs)
	for i := 0; i < pairs; i++ {
		if _, seen := m.specialTable[m.specialFrom[i]]; seen {
			continue // first occurrence wins
		}
		m.specialTable[m.specialFrom[i]] = m.specialTo[i]
	}
}
