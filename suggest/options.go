// Package suggest - functional configuration.
//
// Same conventions as the rest of the library: Option setters resolved
// against documented defaults, last-writer-wins, unexported state.
// Constructors panic only on nonsensical parameters (programmer
// error): a negative distance budget or an unknown metric is a bug at
// the call site, not a runtime condition to route through errors.

package suggest

// Internal panic messages (no magic strings).
const (
	panicNegativeMaxDistance = "suggest: WithMaxDistance: limit must be non-negative"
	panicUnknownMetric       = "suggest: WithMetric: unknown metric"
)

// Option mutates internal options. Safe to apply repeatedly; later
// options win.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	maxDistance int    // DefaultMaxDistance
	metric      Metric // Levenshtein
}

// WithMaxDistance sets the inclusive typo budget: only candidates at
// distance ≤ limit are suggested. Zero means exact matches only.
// Panics on a negative limit.
func WithMaxDistance(limit int) Option {
	if limit < 0 {
		panic(panicNegativeMaxDistance)
	}

	return func(o *options) { o.maxDistance = limit }
}

// WithMetric selects the edit-distance flavor.
// Panics on an unknown metric value.
func WithMetric(m Metric) Option {
	switch m {
	case Levenshtein, DamerauLevenshtein, OptimalAlignment:
		// known
	default:
		panic(panicUnknownMetric)
	}

	return func(o *options) { o.metric = m }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{
		maxDistance: DefaultMaxDistance,
		metric:      Levenshtein,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
