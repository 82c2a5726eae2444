// Package search: the traversal skeleton shared by Dijkstra and A*, and the
// lazy-decrease-key frontier used by all three engines.
//
// One parameterized loop serves both unidirectional engines; the only
// degree of freedom is the priority key function. This replaces what would
// otherwise be three near-identical copies of the same pop/close/relax
// cycle.
package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/routelab/routelab/core"
	"github.com/routelab/routelab/metrics"
)

// unreached marks a node with no recorded predecessor.
const unreached = core.NodeID(-1)

// keyFunc computes the frontier priority for a node given its tentative
// distance from the start. Dijkstra uses the distance itself; A* adds the
// weighted heuristic estimate.
type keyFunc func(n core.NodeID, dist float64) float64

// costFunc extracts the configured cost attribute from an arc.
type costFunc func(a core.Arc) float64

// costOf resolves the CostField option into an arc accessor.
func costOf(f CostField) costFunc {
	if f == CostTime {
		return func(a core.Arc) float64 { return a.Time }
	}

	return func(a core.Arc) float64 { return a.Distance }
}

// metricFor resolves a HeuristicKind into its coordinate distance function.
func metricFor(k HeuristicKind) func(a, b core.Coord) float64 {
	switch k {
	case Manhattan:
		return core.Manhattan
	case Euclidean:
		return core.Euclidean
	default:
		return core.Haversine
	}
}

// prepare runs the shared validation sequence and sets up the tracker.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be nodes of g (ErrNodeNotFound, with the ID).
//  3. optional structural sweep via core.Graph.Validate (ErrInvalidGraph).
//
// On success the returned tracker carries the algorithm name and graph
// size; the caller owns Start/Stop.
func prepare(g *core.Graph, start, goal core.NodeID, name string, opts []Option) (Options, *metrics.Tracker, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return cfg, nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return cfg, nil, fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if !g.HasNode(goal) {
		return cfg, nil, fmt.Errorf("%w: goal %d", ErrNodeNotFound, goal)
	}
	if cfg.Validate {
		if err := g.Validate(); err != nil {
			return cfg, nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
		}
	}

	tr := cfg.Tracker
	if tr == nil {
		tr = metrics.NewTracker()
	}
	tr.SetAlgorithm(name)
	tr.SetGraphSize(g.NodeCount(), g.EdgeCount())

	return cfg, tr, nil
}

// runner holds the mutable state of one unidirectional search invocation.
// It is created fresh per call and discarded on return; nothing is shared
// across calls except the caller-supplied tracker.
type runner struct {
	g       *core.Graph
	goal    core.NodeID
	cost    costFunc
	key     keyFunc
	tracker *metrics.Tracker

	dist     []float64     // tentative cost from start, +Inf when undiscovered
	prev     []core.NodeID // predecessor on the best known path, unreached when none
	closed   []bool        // finalized nodes; never reopened
	pq       frontier      // lazy-decrease-key min-heap keyed by r.key
	explored int           // nodes closed by this invocation alone
}

// newRunner allocates the per-invocation state and seeds the frontier with
// the start node.
func newRunner(g *core.Graph, start, goal core.NodeID, cost costFunc, key keyFunc, tr *metrics.Tracker) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		goal:    goal,
		cost:    cost,
		key:     key,
		tracker: tr,
		dist:    make([]float64, n),
		prev:    make([]core.NodeID, n),
		closed:  make([]bool, n),
		pq:      make(frontier, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = unreached
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{key: key(start, 0), node: start})
	tr.AddQueueOp()

	return r
}

// run executes the pop/close/relax loop until the goal is closed or the
// frontier exhausts. It reports whether the goal was reached.
func (r *runner) run() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		r.tracker.AddQueueOp()
		u := item.node

		// Stale duplicate left behind by lazy decrease-key: discard.
		if r.closed[u] {
			continue
		}

		r.closed[u] = true
		r.explored++
		r.tracker.AddNodeExplored()

		// Single-target contract: stop the moment the goal is finalized.
		if u == r.goal {
			return true
		}

		r.relax(u)
	}

	return false
}

// relax attempts to improve the tentative distance of every open neighbor
// of u. An improvement records the predecessor, pushes a fresh frontier
// entry (stale copies are tolerated), and feeds the tracker.
func (r *runner) relax(u core.NodeID) {
	for _, a := range r.g.Arcs(u) {
		v := a.To
		if r.closed[v] {
			continue
		}

		next := r.dist[u] + r.cost(a)
		if next >= r.dist[v] {
			continue
		}

		r.dist[v] = next
		r.prev[v] = u
		heap.Push(&r.pq, &frontierItem{key: r.key(v, next), node: v})
		r.tracker.AddQueueOp()
		r.tracker.AddEdgeRelaxed()
		r.tracker.ObserveFrontier(r.pq.Len())
	}
}

// pathTo rebuilds the start→goal node sequence from the predecessor chain.
// Returns nil when the goal was never reached.
func (r *runner) pathTo(start core.NodeID) []core.NodeID {
	if math.IsInf(r.dist[r.goal], 1) {
		return nil
	}

	path := []core.NodeID{}
	for cur := r.goal; ; {
		path = append(path, cur)
		if cur == start {
			break
		}
		cur = r.prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// result assembles the Result for a finished run.
func (r *runner) result(start core.NodeID, found bool) Result {
	res := Result{
		NodesExplored: r.explored,
		Metrics:       r.tracker.Snapshot(),
	}
	if !found {
		return res
	}
	res.Path = r.pathTo(start)
	res.TotalCost = r.dist[r.goal]

	return res
}

// frontierItem is one (priority key, node) frontier entry.
type frontierItem struct {
	key  float64
	node core.NodeID
}

// frontier is a min-heap of *frontierItem ordered by key ascending.
// Under lazy decrease-key a node may appear multiple times; correctness
// rests on the closed-set check at pop time, not on deduplication here.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority key alone; ties resolve by heap structure, which
// is deterministic for a fixed insertion sequence.
func (f frontier) Less(i, j int) bool { return f[i].key < f[j].key }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
