// Package search: the heuristic-guided engine.
package search

import "github.com/routelab/routelab/core"

// algoAStar is the descriptive name recorded on the tracker.
const algoAStar = "A*"

// AStar computes the cheapest start→goal path using a heuristic-guided
// priority key: f(v) = g(v) + w·h(v, goal), where g is the tentative cost
// from the start, h the configured coordinate heuristic, and w the
// heuristic weight (default 1.0).
//
// The traversal skeleton is identical to Dijkstra — same lazy-decrease-key
// frontier, same closed-set guard, same early exit on goal pop — only the
// key differs. Every h evaluation increments the tracker's dedicated
// heuristic counter, separate from queue operations.
//
// Optimality holds only for an admissible, consistent heuristic; see the
// package doc for when GreatCircle, Manhattan and Euclidean qualify.
//
// Complexity: O((V + E) log V) worst case; typically far fewer expansions
// than Dijkstra when the heuristic is informative.
func AStar(g *core.Graph, start, goal core.NodeID, opts ...Option) (Result, error) {
	cfg, tracker, err := prepare(g, start, goal, algoAStar, opts)
	if err != nil {
		return Result{}, err
	}

	cost := costOf(cfg.CostField)
	metric := metricFor(cfg.Heuristic)
	weight := cfg.HeuristicWeight

	// Goal position is fixed for the whole run; IDs were validated by
	// prepare, so coordinate lookups cannot fail.
	goalCoord, _ := g.Coord(goal)
	h := func(n core.NodeID) float64 {
		tracker.AddHeuristicEval()
		c, _ := g.Coord(n)

		return metric(c, goalCoord)
	}

	key := func(n core.NodeID, dist float64) float64 { return dist + weight*h(n) }

	tracker.Start()
	r := newRunner(g, start, goal, cost, key, tracker)
	found := r.run()
	tracker.Stop()

	return r.result(start, found), nil
}
