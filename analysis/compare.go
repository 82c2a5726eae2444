// Package analysis: pairwise comparison of two tracked runs.
package analysis

import (
	"fmt"
	"math"

	"github.com/routelab/routelab/metrics"
)

// tie is reported when neither run is strictly faster or leaner.
const tie = "tie"

// Comparison sets two tracked runs side by side. Produced only from
// snapshot data; the runs themselves are never repeated.
type Comparison struct {
	// Faster is the algorithm name of the faster run, or "tie".
	Faster string

	// Speedup is slowerMillis / fasterMillis. 1 when times are equal or
	// the faster time is 0 (guarding the division).
	Speedup float64

	// MoreEfficient is the name of the run that explored fewer nodes,
	// or "tie".
	MoreEfficient string

	// ExplorationDelta is the absolute difference in nodes explored.
	ExplorationDelta int

	// EfficiencyGain is the percentage of nodes the leaner run saved
	// relative to the broader one (0 when the broader count is 0).
	EfficiencyGain float64

	// Insights are presentation-ready summary strings.
	Insights []string
}

// Compare derives a Comparison of two snapshots. Symmetric in content:
// swapping the arguments changes only which name appears where.
func Compare(a, b metrics.Snapshot) Comparison {
	var c Comparison

	// Timing: faster algorithm and speedup factor, zero-time guarded.
	switch {
	case a.ExecutionMillis == b.ExecutionMillis:
		c.Faster = tie
		c.Speedup = 1
	case a.ExecutionMillis < b.ExecutionMillis:
		c.Faster = a.Algorithm
		c.Speedup = speedup(b.ExecutionMillis, a.ExecutionMillis)
	default:
		c.Faster = b.Algorithm
		c.Speedup = speedup(a.ExecutionMillis, b.ExecutionMillis)
	}

	// Exploration: leaner algorithm and saved-node margin.
	c.ExplorationDelta = int(math.Abs(float64(a.NodesExplored - b.NodesExplored)))
	switch {
	case a.NodesExplored == b.NodesExplored:
		c.MoreEfficient = tie
	case a.NodesExplored < b.NodesExplored:
		c.MoreEfficient = a.Algorithm
		c.EfficiencyGain = gain(b.NodesExplored, a.NodesExplored)
	default:
		c.MoreEfficient = b.Algorithm
		c.EfficiencyGain = gain(a.NodesExplored, b.NodesExplored)
	}

	c.Insights = []string{
		timingComparison(c),
		explorationComparison(c),
	}

	return c
}

// speedup divides slower by faster, returning 1 when faster is 0.
func speedup(slower, faster float64) float64 {
	if faster == 0 {
		return 1
	}

	return slower / faster
}

// gain returns the percentage of nodes saved by the leaner run.
func gain(broader, leaner int) float64 {
	if broader == 0 {
		return 0
	}

	return float64(broader-leaner) / float64(broader) * 100
}

func timingComparison(c Comparison) string {
	if c.Faster == tie {
		return "both runs took the same wall-clock time"
	}

	return fmt.Sprintf("%s ran %.1fx faster", c.Faster, c.Speedup)
}

func explorationComparison(c Comparison) string {
	if c.MoreEfficient == tie {
		return "both runs explored the same number of nodes"
	}

	return fmt.Sprintf("%s explored %d fewer nodes (%.1f%% fewer)",
		c.MoreEfficient, c.ExplorationDelta, c.EfficiencyGain)
}
