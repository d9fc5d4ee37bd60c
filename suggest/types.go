// Package suggest - metric selection and documented defaults.

package suggest

import "github.com/katalvlaran/textdist/editdist"

// Metric selects the edit-distance flavor used to compare the given
// string with each candidate.
type Metric int

const (
	// Levenshtein counts insertions, deletions and substitutions.
	// The default: cheapest, and a true metric.
	Levenshtein Metric = iota

	// DamerauLevenshtein additionally counts adjacent transpositions
	// whose runes may be edited again (the reusable channel).
	DamerauLevenshtein

	// OptimalAlignment additionally counts adjacent transpositions
	// whose runes are consumed for good (the sealed channel).
	OptimalAlignment
)

// DefaultMaxDistance is the default typo budget: candidates further
// than this many edits away are never suggested. Three is the
// conventional threshold for human-typed identifiers.
const DefaultMaxDistance = 3

// distanceFunc maps the metric onto its editdist facade.
// WithMetric validates the value up front, so the default arm is
// unreachable through the public API.
func (m Metric) distanceFunc() func(string, string) int {
	switch m {
	case Levenshtein:
		return editdist.Levenshtein
	case DamerauLevenshtein:
		return editdist.DamerauLevenshtein
	case OptimalAlignment:
		return editdist.OptimalAlignment
	default:
		panic(panicUnknownMetric)
	}
}
