package suggest_test

import (
	"testing"

	"github.com/katalvlaran/textdist/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNearest_BasicMatch verifies the closest candidate within the
// default budget is returned.
func TestNearest_BasicMatch(t *testing.T) {
	got, ok := suggest.Nearest("statis", []string{"state", "status", "sortie"})
	require.True(t, ok)
	assert.Equal(t, "status", got, "status is one edit away, state is two")
}

// TestNearest_EarliestWinsTies verifies that among equally close
// candidates the earliest in the list wins.
func TestNearest_EarliestWinsTies(t *testing.T) {
	// "status" and "stats" are both one edit from "statis".
	got, ok := suggest.Nearest("statis", []string{"status", "stats"})
	require.True(t, ok)
	assert.Equal(t, "status", got)

	got, ok = suggest.Nearest("statis", []string{"stats", "status"})
	require.True(t, ok)
	assert.Equal(t, "stats", got, "reversing the list must reverse the tie")
}

// TestNearest_ExactMatch verifies an exact candidate always wins.
func TestNearest_ExactMatch(t *testing.T) {
	got, ok := suggest.Nearest("stats", []string{"status", "stats", "state"})
	require.True(t, ok)
	assert.Equal(t, "stats", got)
}

// TestNearest_NothingWithinBudget verifies ok=false when every
// candidate exceeds MaxDistance.
func TestNearest_NothingWithinBudget(t *testing.T) {
	got, ok := suggest.Nearest("crat", []string{"dog"}, suggest.WithMaxDistance(2))
	assert.False(t, ok)
	assert.Empty(t, got)

	// no candidates at all
	_, ok = suggest.Nearest("crat", nil)
	assert.False(t, ok)
}

// TestNearest_MaxDistanceZero verifies a zero budget accepts exact
// matches only.
func TestNearest_MaxDistanceZero(t *testing.T) {
	_, ok := suggest.Nearest("statis", []string{"status"}, suggest.WithMaxDistance(0))
	assert.False(t, ok)

	got, ok := suggest.Nearest("status", []string{"status"}, suggest.WithMaxDistance(0))
	require.True(t, ok)
	assert.Equal(t, "status", got)
}

// TestNearest_MetricChangesOutcome verifies the metric option is
// honored: under Damerau–Levenshtein a transposed candidate gets as
// close as a substituted one and position decides.
func TestNearest_MetricChangesOutcome(t *testing.T) {
	candidates := []string{"cart", "chart", "cat", "dog"}

	// Levenshtein: cart is 2 edits from crat, cat is 1.
	got, ok := suggest.Nearest("crat", candidates, suggest.WithMaxDistance(1))
	require.True(t, ok)
	assert.Equal(t, "cat", got)

	// Damerau–Levenshtein: the ra→ar swap makes cart 1 edit too, and
	// cart precedes cat in the list.
	got, ok = suggest.Nearest("crat", candidates,
		suggest.WithMaxDistance(1),
		suggest.WithMetric(suggest.DamerauLevenshtein),
	)
	require.True(t, ok)
	assert.Equal(t, "cart", got)
}

// TestAll_RankedAndStable verifies All returns every candidate within
// budget, closest first, preserving list order on equal distances.
func TestAll_RankedAndStable(t *testing.T) {
	got := suggest.All("statis", []string{"state", "status", "stats", "sortie"})
	assert.Equal(t, []string{"status", "stats", "state", "sortie"}, got,
		"distances 1,1,2,3 ranked with stable ties")
}

// TestAll_BudgetFilters verifies MaxDistance trims the ranking.
func TestAll_BudgetFilters(t *testing.T) {
	got := suggest.All("statis", []string{"state", "status", "stats", "sortie"},
		suggest.WithMaxDistance(1))
	assert.Equal(t, []string{"status", "stats"}, got)
}

// TestAll_EmptyResult verifies an empty (non-nil contract is not
// promised) result when nothing qualifies.
func TestAll_EmptyResult(t *testing.T) {
	got := suggest.All("xyz", []string{"alphabet", "dictionary"})
	assert.Empty(t, got)
}

// TestOptions_PanicOnProgrammerError verifies the option constructors
// reject nonsensical parameters loudly.
func TestOptions_PanicOnProgrammerError(t *testing.T) {
	assert.Panics(t, func() { suggest.WithMaxDistance(-1) })
	assert.Panics(t, func() { suggest.WithMetric(suggest.Metric(42)) })
}
