package suggest

import "sort"

// Nearest returns the candidate closest to given, provided it lies
// within the configured MaxDistance; ok reports whether any candidate
// qualified. Ties are broken by position: the earliest candidate wins,
// so callers may order their list by preference.
//
// Deterministic and side-effect free.
//
// Complexity: O(len(candidates) · |given| · |candidate|) time,
// O(|given| · |candidate|) transient memory per comparison.
func Nearest(given string, candidates []string, opts ...Option) (string, bool) {
	o := gatherOptions(opts...)
	dist := o.metric.distanceFunc()

	var (
		best  string
		found bool
		limit = o.maxDistance + 1 // strict < keeps the earliest tie
	)
	for _, cand := range candidates {
		if d := dist(given, cand); d < limit {
			best, limit, found = cand, d, true
			if d == 0 {
				break // exact match; nothing can beat it
			}
		}
	}

	return best, found
}

// All returns every candidate within the configured MaxDistance,
// closest first; candidates at equal distance keep their original
// relative order. The result is a fresh slice (possibly empty), never
// a view into candidates.
//
// Complexity: O(len(candidates) · |given| · |candidate|) for the
// distances plus O(k·log k) for ranking k accepted candidates.
func All(given string, candidates []string, opts ...Option) []string {
	o := gatherOptions(opts...)
	dist := o.metric.distanceFunc()

	type ranked struct {
		name string
		d    int
	}
	accepted := make([]ranked, 0, len(candidates))
	for _, cand := range candidates {
		if d := dist(given, cand); d <= o.maxDistance {
			accepted = append(accepted, ranked{name: cand, d: d})
		}
	}

	// Stable: equal distances preserve candidate order.
	sort.SliceStable(accepted, func(i, j int) bool { return accepted[i].d < accepted[j].d })

	out := make([]string, len(accepted))
	for i, r := range accepted {
		out[i] = r.name
	}

	return out
}
