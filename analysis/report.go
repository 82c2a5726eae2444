// Package analysis: the per-run Report and the Analyze entry point.
package analysis

import (
	"fmt"
	"math"

	"github.com/routelab/routelab/metrics"
)

// Complexity strings per algorithm family.
const (
	uniformTime  = "O((V + E) log V)"
	uniformSpace = "O(V + E)"

	heuristicTime  = "O(b^d)"
	heuristicSpace = "O(V)"
)

// Banding thresholds for the insight strings.
const (
	focusedRatioPct  = 25.0
	moderateRatioPct = 60.0

	lightRelaxRatio    = 1.5
	moderateRelaxRatio = 3.0

	subMillisecond = 1.0
	fastMillis     = 100.0
)

// Report is the human-readable complexity analysis of one tracked run.
type Report struct {
	// Algorithm is the engine name carried by the snapshot.
	Algorithm string

	// TimeComplexity and SpaceComplexity are the family's Big-O strings.
	TimeComplexity  string
	SpaceComplexity string

	// TheoreticalOps is the family's coarse operation-count estimate:
	// (V+E)·log2(V) for uniform-cost, b^d for heuristic-guided.
	TheoreticalOps float64

	// EfficiencyRatio is NodesExplored / Vertices × 100 (0 when V is 0).
	EfficiencyRatio float64

	// RelaxationRatio is EdgesRelaxed / NodesExplored (0 when none explored).
	RelaxationRatio float64

	// ExecutionMillis, NodesExplored and PeakFrontier echo the snapshot.
	ExecutionMillis float64
	NodesExplored   int
	PeakFrontier    int

	// Insights are qualitative banding strings for presentation layers.
	Insights []string
}

// Analyze derives a Report from a single snapshot. Pure computation;
// all denominators are guarded, so zero-valued snapshots are safe.
func Analyze(s metrics.Snapshot) Report {
	r := Report{
		Algorithm:       s.Algorithm,
		ExecutionMillis: s.ExecutionMillis,
		NodesExplored:   s.NodesExplored,
		PeakFrontier:    s.PeakFrontier,
	}

	if s.HeuristicEvals > 0 {
		r.TimeComplexity = heuristicTime
		r.SpaceComplexity = heuristicSpace
		r.TheoreticalOps = heuristicOps(s)
	} else {
		r.TimeComplexity = uniformTime
		r.SpaceComplexity = uniformSpace
		r.TheoreticalOps = uniformOps(s)
	}

	if s.Vertices > 0 {
		r.EfficiencyRatio = float64(s.NodesExplored) / float64(s.Vertices) * 100
	}
	if s.NodesExplored > 0 {
		r.RelaxationRatio = float64(s.EdgesRelaxed) / float64(s.NodesExplored)
	}

	r.Insights = []string{
		efficiencyInsight(r.EfficiencyRatio),
		relaxationInsight(r.RelaxationRatio),
		timingInsight(r.ExecutionMillis),
	}

	return r
}

// uniformOps estimates (V+E)·log2(V) for the uniform-cost family.
func uniformOps(s metrics.Snapshot) float64 {
	if s.Vertices < 2 {
		return 0
	}

	return float64(s.Vertices+s.Edges) * math.Log2(float64(s.Vertices))
}

// heuristicOps estimates b^d for the heuristic-guided family, with the
// average branching factor b = 2E/V (floored at 2) and the depth estimate
// d = log2(V). Coarse by design; see the package doc.
func heuristicOps(s metrics.Snapshot) float64 {
	if s.Vertices < 2 {
		return 0
	}

	b := 2 * float64(s.Edges) / float64(s.Vertices)
	if b < 2 {
		b = 2
	}
	d := math.Log2(float64(s.Vertices))

	return math.Pow(b, d)
}

// efficiencyInsight bands the efficiency ratio.
func efficiencyInsight(pct float64) string {
	switch {
	case pct <= focusedRatioPct:
		return fmt.Sprintf("highly focused search: explored %.1f%% of the graph", pct)
	case pct <= moderateRatioPct:
		return fmt.Sprintf("moderately focused search: explored %.1f%% of the graph", pct)
	default:
		return fmt.Sprintf("broad sweep: explored %.1f%% of the graph", pct)
	}
}

// relaxationInsight bands the relaxations-per-closed-node ratio.
func relaxationInsight(ratio float64) string {
	switch {
	case ratio < lightRelaxRatio:
		return fmt.Sprintf("light relaxation load: %.2f improvements per closed node", ratio)
	case ratio < moderateRelaxRatio:
		return fmt.Sprintf("moderate relaxation load: %.2f improvements per closed node", ratio)
	default:
		return fmt.Sprintf("heavy relaxation load: %.2f improvements per closed node", ratio)
	}
}

// timingInsight bands the wall-clock time.
func timingInsight(ms float64) string {
	switch {
	case ms < subMillisecond:
		return "sub-millisecond execution"
	case ms < fastMillis:
		return fmt.Sprintf("fast execution: %.2f ms", ms)
	default:
		return fmt.Sprintf("slow execution: %.2f ms", ms)
	}
}
