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

// TestAStar_MatchesDijkstraOnLine verifies optimality with an admissible
// planar heuristic: the line's unit weights equal the straight-line
// distances, so Euclidean never overestimates.
func TestAStar_MatchesDijkstraOnLine(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(7))
	require.NoError(t, err)

	d, err := search.Dijkstra(g, 0, 6)
	require.NoError(t, err)
	a, err := search.AStar(g, 0, 6, search.WithHeuristic(search.Euclidean))
	require.NoError(t, err)

	assert.Equal(t, d.Path, a.Path)
	assert.InDelta(t, d.TotalCost, a.TotalCost, 1e-9)
}

// TestAStar_MatchesDijkstraOnGeo verifies optimality with the great-circle
// heuristic on a geographic fixture whose edge weights are haversine
// distances by construction.
func TestAStar_MatchesDijkstraOnGeo(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithSeed(42)}, builder.RandomGeo(40))
	require.NoError(t, err)

	goal := core.NodeID(g.NodeCount() - 1)
	d, err := search.Dijkstra(g, 0, goal)
	require.NoError(t, err)
	a, err := search.AStar(g, 0, goal, search.WithHeuristic(search.GreatCircle))
	require.NoError(t, err)

	assert.InDelta(t, d.TotalCost, a.TotalCost, 1e-9, "admissible heuristic must preserve optimality")
	assert.NotNil(t, a.Path)
}

// TestAStar_GuidanceOnStar verifies the heuristic steers the search: on a
// leaf-to-leaf star query the goal leaf has the only zero heuristic, so A*
// settles exactly start, center, goal while Dijkstra may sweep more leaves.
func TestAStar_GuidanceOnStar(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(6))
	require.NoError(t, err)

	d, err := search.Dijkstra(g, 1, 3)
	require.NoError(t, err)
	a, err := search.AStar(g, 1, 3, search.WithHeuristic(search.Euclidean))
	require.NoError(t, err)

	assert.Equal(t, d.TotalCost, a.TotalCost)
	assert.Equal(t, 3, a.NodesExplored, "start, center, goal")
	assert.LessOrEqual(t, a.NodesExplored, d.NodesExplored)
}

// TestAStar_CountsHeuristicEvals verifies the dedicated counter: A* records
// evaluations, uniform-cost search never does.
func TestAStar_CountsHeuristicEvals(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(5))
	require.NoError(t, err)

	tr := metrics.NewTracker()
	_, err = search.AStar(g, 0, 4, search.WithTracker(tr), search.WithHeuristic(search.Manhattan))
	require.NoError(t, err)
	assert.Positive(t, tr.Snapshot().HeuristicEvals)
	assert.Equal(t, "A*", tr.Snapshot().Algorithm)
}

// TestAStar_ZeroWeightDegeneratesToUniformCost verifies w=0 removes the
// heuristic term from the key: the result cost matches Dijkstra exactly.
func TestAStar_ZeroWeightDegeneratesToUniformCost(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithSeed(7)}, builder.RandomGeo(25))
	require.NoError(t, err)

	goal := core.NodeID(g.NodeCount() - 1)
	d, err := search.Dijkstra(g, 0, goal)
	require.NoError(t, err)
	a, err := search.AStar(g, 0, goal, search.WithHeuristicWeight(0))
	require.NoError(t, err)

	assert.InDelta(t, d.TotalCost, a.TotalCost, 1e-9)
}

// TestAStar_NegativeWeightPanics verifies the option constructor contract.
func TestAStar_NegativeWeightPanics(t *testing.T) {
	assert.Panics(t, func() { search.WithHeuristicWeight(-1) })
}

// TestAStar_ValidationErrors verifies A* shares the engine-wide validation.
func TestAStar_ValidationErrors(t *testing.T) {
	_, err := search.AStar(nil, 0, 1)
	assert.ErrorIs(t, err, search.ErrNilGraph)

	g, err := builder.Build(nil, builder.Path(3))
	require.NoError(t, err)
	_, err = search.AStar(g, 0, 9)
	assert.ErrorIs(t, err, search.ErrNodeNotFound)
}
