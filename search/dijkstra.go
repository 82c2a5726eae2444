// Package search: the uniform-cost engine.
package search

import "github.com/routelab/routelab/core"

// algoDijkstra is the descriptive name recorded on the tracker.
const algoDijkstra = "Dijkstra"

// Dijkstra computes the cheapest start→goal path by cumulative edge cost.
//
// Classic label-setting: pop the minimum-distance frontier entry, discard it
// if already closed (stale duplicate), otherwise finalize it, stop early if
// it is the goal, and relax its open neighbors. start == goal is not
// special-cased: the loop pops start, closes it, and matches the goal
// immediately — one node explored, path [start], cost 0.
//
// An unreachable goal returns a nil-path Result and a nil error; see the
// package doc for the full outcome contract.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, start, goal core.NodeID, opts ...Option) (Result, error) {
	cfg, tracker, err := prepare(g, start, goal, algoDijkstra, opts)
	if err != nil {
		return Result{}, err
	}

	cost := costOf(cfg.CostField)

	tracker.Start()
	r := newRunner(g, start, goal, cost, func(_ core.NodeID, dist float64) float64 { return dist }, tracker)
	found := r.run()
	tracker.Stop()

	return r.result(start, found), nil
}
