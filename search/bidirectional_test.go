package search_test

import (
	"testing"

	"github.com/routelab/routelab/builder"
	"github.com/routelab/routelab/core"
	"github.com/routelab/routelab/metrics"
	"github.com/routelab/routelab/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBidirectional_MatchesDijkstraOnLine verifies the spliced path and its
// cost on a fixture with a unique optimum.
func TestBidirectional_MatchesDijkstraOnLine(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(9))
	require.NoError(t, err)

	d, err := search.Dijkstra(g, 0, 8)
	require.NoError(t, err)
	b, err := search.Bidirectional(g, 0, 8)
	require.NoError(t, err)

	assert.Equal(t, d.Path, b.Path)
	assert.InDelta(t, d.TotalCost, b.TotalCost, 1e-9)
}

// TestBidirectional_MatchesDijkstraOnGeo verifies cost optimality on a
// branchy geographic fixture. Only the cost is asserted: several optimal
// paths may coexist and the two engines are free to pick different ones.
func TestBidirectional_MatchesDijkstraOnGeo(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithSeed(42)}, builder.RandomGeo(40))
	require.NoError(t, err)

	goal := core.NodeID(g.NodeCount() - 1)
	d, err := search.Dijkstra(g, 0, goal)
	require.NoError(t, err)
	b, err := search.Bidirectional(g, 0, goal)
	require.NoError(t, err)

	require.NotNil(t, b.Path)
	assert.InDelta(t, d.TotalCost, b.TotalCost, 1e-9)
	assert.Equal(t, core.NodeID(0), b.Path[0])
	assert.Equal(t, goal, b.Path[len(b.Path)-1])
}

// TestBidirectional_SplicesThroughStarCenter verifies reconstruction across
// the meeting point: the two chains must join without repeating it.
func TestBidirectional_SplicesThroughStarCenter(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(4))
	require.NoError(t, err)

	b, err := search.Bidirectional(g, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{1, 0, 3}, b.Path)
	assert.Equal(t, 2.0, b.TotalCost)
}

// TestBidirectional_IgnoresExpensiveShortcut verifies the termination rule
// keeps expanding past the first meeting candidate: the direct weight-10
// edge makes the two frontiers meet on the very first forward step, but the
// cheap four-hop line must still win.
func TestBidirectional_IgnoresExpensiveShortcut(t *testing.T) {
	g := lineWithShortcut(t)

	b, err := search.Bidirectional(g, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, b.Path)
	assert.Equal(t, 4.0, b.TotalCost)
}

// TestBidirectional_ShortcutGraphsStayOptimal pins the frontier-top
// termination inequality on longer lines with an expensive direct edge:
// the early meeting candidate is never on the optimal path, so stopping
// before the frontier tops cross would return the wrong route.
func TestBidirectional_ShortcutGraphsStayOptimal(t *testing.T) {
	for _, n := range []int{5, 9, 15} {
		g, err := builder.Build(nil, builder.Path(n))
		require.NoError(t, err)
		goal := core.NodeID(n - 1)
		require.NoError(t, g.AddEdge(0, goal, float64(3*n)))

		d, err := search.Dijkstra(g, 0, goal)
		require.NoError(t, err)
		b, err := search.Bidirectional(g, 0, goal)
		require.NoError(t, err)

		assert.Equal(t, d.Path, b.Path, "line of %d with shortcut", n)
		assert.InDelta(t, d.TotalCost, b.TotalCost, 1e-9)
	}
}

// TestBidirectional_ExploresLessThanDijkstra verifies the headline saving on
// line fixtures: two half-radius sweeps settle fewer nodes than one full one.
func TestBidirectional_ExploresLessThanDijkstra(t *testing.T) {
	for _, n := range []int{5, 9, 17} {
		g, err := builder.Build(nil, builder.Path(n))
		require.NoError(t, err)

		d, err := search.Dijkstra(g, 0, core.NodeID(n-1))
		require.NoError(t, err)
		b, err := search.Bidirectional(g, 0, core.NodeID(n-1))
		require.NoError(t, err)

		assert.Less(t, b.NodesExplored, d.NodesExplored, "line of %d nodes", n)
		assert.InDelta(t, d.TotalCost, b.TotalCost, 1e-9)
	}
}

// TestBidirectional_StartEqualsGoal verifies the short-circuit: single-node
// path, zero cost, one node explored, tracker still labeled.
func TestBidirectional_StartEqualsGoal(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(5))
	require.NoError(t, err)

	tr := metrics.NewTracker()
	b, err := search.Bidirectional(g, 2, 2, search.WithTracker(tr))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{2}, b.Path)
	assert.Equal(t, 0.0, b.TotalCost)
	assert.Equal(t, 1, b.NodesExplored)
	assert.Equal(t, "Bidirectional", tr.Snapshot().Algorithm)
}

// TestBidirectional_Unreachable verifies the frontiers-exhaust outcome:
// nil path, nil error, zero cost.
func TestBidirectional_Unreachable(t *testing.T) {
	g := twoComponents(t)

	b, err := search.Bidirectional(g, 0, 3)
	require.NoError(t, err)
	assert.Nil(t, b.Path)
	assert.Equal(t, 0.0, b.TotalCost)
	assert.Positive(t, b.Metrics.QueueOps, "metrics still populated")
}

// TestBidirectional_ValidationErrors verifies the shared invocation checks.
func TestBidirectional_ValidationErrors(t *testing.T) {
	_, err := search.Bidirectional(nil, 0, 1)
	assert.ErrorIs(t, err, search.ErrNilGraph)

	g, err := builder.Build(nil, builder.Path(3))
	require.NoError(t, err)
	_, err = search.Bidirectional(g, 5, 0)
	assert.ErrorIs(t, err, search.ErrNodeNotFound)
}
