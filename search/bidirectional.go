// Package search: the bidirectional meet-in-the-middle engine.
package search

import (
	"container/heap"
	"math"

	"github.com/routelab/routelab/core"
	"github.com/routelab/routelab/metrics"
)

// algoBidirectional is the descriptive name recorded on the tracker.
const algoBidirectional = "Bidirectional"

// Bidirectional runs two uniform-cost searches in lockstep — forward from
// start, reverse from goal — over the same undirected graph, alternating
// one expansion step per side. Every relaxation checks whether the relaxed
// node has already been seen by the opposite direction; the cheapest such
// meeting candidate is kept as bestDistance, and the run stops once
//
//	minKey(forward frontier) + minKey(reverse frontier) >= bestDistance
//
// at which point every path still discoverable costs at least bestDistance,
// so no further expansion can improve the answer. The first meeting
// candidate is NOT final: a direct but expensive edge may meet immediately
// while a cheaper multi-hop route is still several steps from being found.
// The returned path splices the forward predecessor chain (start→meet) with
// the reverse chain (meet→goal).
//
// start == goal short-circuits to the single-node path. If the two
// frontiers exhaust without meeting, the goal is unreachable: nil path,
// nil error.
//
// On roughly symmetric graphs each side explores about half the radius of
// a single uniform-cost search; compare NodesExplored across trackers to
// see the reduction.
func Bidirectional(g *core.Graph, start, goal core.NodeID, opts ...Option) (Result, error) {
	cfg, tracker, err := prepare(g, start, goal, algoBidirectional, opts)
	if err != nil {
		return Result{}, err
	}

	tracker.Start()

	if start == goal {
		tracker.AddNodeExplored()
		tracker.Stop()

		return Result{
			Path:          []core.NodeID{start},
			TotalCost:     0,
			NodesExplored: 1,
			Metrics:       tracker.Snapshot(),
		}, nil
	}

	b := newBiRunner(g, start, goal, costOf(cfg.CostField), tracker)
	b.run()
	tracker.Stop()

	return b.result(), nil
}

// direction holds one side's independent search state.
type direction struct {
	dist   []float64
	prev   []core.NodeID
	closed []bool
	pq     frontier
}

// newDirection allocates a side's state seeded at origin.
func newDirection(n int, origin core.NodeID) *direction {
	d := &direction{
		dist:   make([]float64, n),
		prev:   make([]core.NodeID, n),
		closed: make([]bool, n),
		pq:     make(frontier, 0, n),
	}
	for i := range d.dist {
		d.dist[i] = math.Inf(1)
		d.prev[i] = unreached
	}
	d.dist[origin] = 0

	heap.Init(&d.pq)
	heap.Push(&d.pq, &frontierItem{key: 0, node: origin})

	return d
}

// biRunner holds the mutable state of one bidirectional invocation.
// Both directions execute within one thread of control, strictly
// alternating, so bestMeet/bestDist need no synchronization.
type biRunner struct {
	g       *core.Graph
	cost    costFunc
	tracker *metrics.Tracker

	start, goal core.NodeID
	fwd, rev    *direction

	bestMeet core.NodeID
	bestDist float64
	explored int
}

func newBiRunner(g *core.Graph, start, goal core.NodeID, cost costFunc, tr *metrics.Tracker) *biRunner {
	n := g.NodeCount()
	b := &biRunner{
		g:        g,
		cost:     cost,
		tracker:  tr,
		start:    start,
		goal:     goal,
		fwd:      newDirection(n, start),
		rev:      newDirection(n, goal),
		bestMeet: unreached,
		bestDist: math.Inf(1),
	}
	tr.AddQueueOp() // seed push, forward
	tr.AddQueueOp() // seed push, reverse

	return b
}

// run alternates one expansion step per side until the termination
// inequality holds or either frontier exhausts. An exhausted frontier means
// that side's distances are final, so bestDist (if any) is already optimal.
func (b *biRunner) run() {
	for b.fwd.pq.Len() > 0 && b.rev.pq.Len() > 0 {
		if b.settled() {
			return
		}
		b.step(b.fwd, b.rev)

		if b.fwd.pq.Len() == 0 || b.rev.pq.Len() == 0 {
			return
		}
		if b.settled() {
			return
		}
		b.step(b.rev, b.fwd)
	}
}

// settled reports whether bestDist can no longer be improved: the tentative
// frontier tops bound every undiscovered path from below, so once their sum
// reaches bestDist the current best meeting point is optimal. Both frontiers
// must be non-empty when this is called. Stale heap entries only overstate
// the tops, which keeps the bound sound under lazy deletion.
func (b *biRunner) settled() bool {
	if b.bestMeet == unreached {
		return false
	}

	return b.fwd.pq[0].key+b.rev.pq[0].key >= b.bestDist
}

// step pops one entry from own's frontier and, unless it is stale, closes
// the node and relaxes its open neighbors. Each improving relaxation is
// checked against the opposite direction for a cheaper meeting candidate.
func (b *biRunner) step(own, other *direction) {
	item := heap.Pop(&own.pq).(*frontierItem)
	b.tracker.AddQueueOp()
	u := item.node

	if own.closed[u] {
		return
	}
	own.closed[u] = true
	b.explored++
	b.tracker.AddNodeExplored()

	for _, a := range b.g.Arcs(u) {
		v := a.To
		if own.closed[v] {
			continue
		}

		next := own.dist[u] + b.cost(a)
		if next >= own.dist[v] {
			continue
		}

		own.dist[v] = next
		own.prev[v] = u
		heap.Push(&own.pq, &frontierItem{key: next, node: v})
		b.tracker.AddQueueOp()
		b.tracker.AddEdgeRelaxed()
		b.tracker.ObserveFrontier(own.pq.Len() + other.pq.Len())

		// Seen from the opposite direction: a meeting candidate.
		if !math.IsInf(other.dist[v], 1) {
			if total := next + other.dist[v]; total < b.bestDist {
				b.bestDist = total
				b.bestMeet = v
			}
		}
	}
}

// result splices the two predecessor chains into a start→goal sequence.
func (b *biRunner) result() Result {
	res := Result{
		NodesExplored: b.explored,
		Metrics:       b.tracker.Snapshot(),
	}
	if b.bestMeet == unreached {
		return res
	}

	// Forward chain: meet back to start, then reversed.
	path := []core.NodeID{}
	for cur := b.bestMeet; cur != unreached; cur = b.fwd.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	// Reverse chain: the reverse search's predecessors walk toward goal.
	for cur := b.rev.prev[b.bestMeet]; cur != unreached; cur = b.rev.prev[cur] {
		path = append(path, cur)
	}

	res.Path = path
	res.TotalCost = b.bestDist

	return res
}
