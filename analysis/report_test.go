package analysis_test

import (
	"math"
	"testing"

	"github.com/routelab/routelab/analysis"
	"github.com/routelab/routelab/metrics"
	"github.com/stretchr/testify/assert"
)

// TestAnalyze_UniformCostFamily verifies family detection and the
// (V+E)·log2(V) estimate for a run without heuristic evaluations.
func TestAnalyze_UniformCostFamily(t *testing.T) {
	s := metrics.Snapshot{
		Algorithm:       "Dijkstra",
		Vertices:        16,
		Edges:           24,
		NodesExplored:   8,
		EdgesRelaxed:    12,
		ExecutionMillis: 0.4,
	}

	r := analysis.Analyze(s)
	assert.Equal(t, "Dijkstra", r.Algorithm)
	assert.Equal(t, "O((V + E) log V)", r.TimeComplexity)
	assert.Equal(t, "O(V + E)", r.SpaceComplexity)
	assert.Equal(t, float64(16+24)*math.Log2(16), r.TheoreticalOps)
	assert.Equal(t, 50.0, r.EfficiencyRatio)
	assert.Equal(t, 1.5, r.RelaxationRatio)
	assert.Len(t, r.Insights, 3)
}

// TestAnalyze_HeuristicFamily verifies that any heuristic evaluation
// switches the run to the b^d model.
func TestAnalyze_HeuristicFamily(t *testing.T) {
	s := metrics.Snapshot{
		Algorithm:      "A*",
		Vertices:       16,
		Edges:          24,
		NodesExplored:  4,
		HeuristicEvals: 10,
	}

	r := analysis.Analyze(s)
	assert.Equal(t, "O(b^d)", r.TimeComplexity)
	assert.Equal(t, "O(V)", r.SpaceComplexity)
	assert.Equal(t, math.Pow(3, math.Log2(16)), r.TheoreticalOps, "b=2·24/16=3, d=log2(16)")
	assert.Equal(t, 25.0, r.EfficiencyRatio)
}

// TestAnalyze_ZeroGraphSize verifies the divide-by-zero guards: a
// zero-vertex snapshot yields neutral ratios and estimates.
func TestAnalyze_ZeroGraphSize(t *testing.T) {
	r := analysis.Analyze(metrics.Snapshot{Algorithm: "Dijkstra"})

	assert.Equal(t, 0.0, r.TheoreticalOps)
	assert.Equal(t, 0.0, r.EfficiencyRatio)
	assert.Equal(t, 0.0, r.RelaxationRatio)
	assert.Len(t, r.Insights, 3, "insights still produced")
	assert.False(t, math.IsNaN(r.EfficiencyRatio))
}

// TestAnalyze_InsightBandings spot-checks the three banding boundaries.
func TestAnalyze_InsightBandings(t *testing.T) {
	focused := analysis.Analyze(metrics.Snapshot{Vertices: 100, NodesExplored: 10})
	assert.Contains(t, focused.Insights[0], "highly focused")

	moderate := analysis.Analyze(metrics.Snapshot{Vertices: 100, NodesExplored: 50})
	assert.Contains(t, moderate.Insights[0], "moderately focused")

	broad := analysis.Analyze(metrics.Snapshot{Vertices: 100, NodesExplored: 95})
	assert.Contains(t, broad.Insights[0], "broad sweep")

	slow := analysis.Analyze(metrics.Snapshot{Vertices: 2, ExecutionMillis: 250})
	assert.Contains(t, slow.Insights[2], "slow execution")

	quick := analysis.Analyze(metrics.Snapshot{Vertices: 2, ExecutionMillis: 0.2})
	assert.Contains(t, quick.Insights[2], "sub-millisecond")
}
