package analysis_test

import (
	"testing"

	"github.com/routelab/routelab/analysis"
	"github.com/routelab/routelab/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snap builds a distinguishable snapshot for history tests.
func snap(name string, explored int) metrics.Snapshot {
	return metrics.Snapshot{Algorithm: name, NodesExplored: explored}
}

// TestHistory_AddAndOrder verifies oldest-first iteration below capacity.
func TestHistory_AddAndOrder(t *testing.T) {
	h := analysis.NewHistory(3)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 3, h.Cap())

	h.Add(snap("a", 1))
	h.Add(snap("b", 2))

	require.Equal(t, 2, h.Len())
	got := h.Snapshots()
	assert.Equal(t, "a", got[0].Algorithm)
	assert.Equal(t, "b", got[1].Algorithm)

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Algorithm)
}

// TestHistory_EvictsOldest verifies the bound: the oldest run falls off.
func TestHistory_EvictsOldest(t *testing.T) {
	h := analysis.NewHistory(2)
	h.Add(snap("a", 1))
	h.Add(snap("b", 2))
	h.Add(snap("c", 3))

	require.Equal(t, 2, h.Len())
	got := h.Snapshots()
	assert.Equal(t, "b", got[0].Algorithm)
	assert.Equal(t, "c", got[1].Algorithm)

	// Keep cycling; the window keeps sliding.
	h.Add(snap("d", 4))
	got = h.Snapshots()
	assert.Equal(t, []string{"c", "d"}, []string{got[0].Algorithm, got[1].Algorithm})
}

// TestHistory_Empty verifies the empty-history accessors.
func TestHistory_Empty(t *testing.T) {
	h := analysis.NewHistory(1)

	_, ok := h.Last()
	assert.False(t, ok)
	assert.Empty(t, h.Snapshots())
	assert.Empty(t, h.Reports())
}

// TestHistory_BadCapacityPanics verifies the constructor contract.
func TestHistory_BadCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { analysis.NewHistory(0) })
	assert.Panics(t, func() { analysis.NewHistory(-1) })
}

// TestHistory_Reports verifies Reports maps Analyze over the window.
func TestHistory_Reports(t *testing.T) {
	h := analysis.NewHistory(4)
	h.Add(metrics.Snapshot{Algorithm: "Dijkstra", Vertices: 10, NodesExplored: 5})
	h.Add(metrics.Snapshot{Algorithm: "A*", Vertices: 10, NodesExplored: 2, HeuristicEvals: 3})

	reports := h.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, "O((V + E) log V)", reports[0].TimeComplexity)
	assert.Equal(t, "O(b^d)", reports[1].TimeComplexity)
}
