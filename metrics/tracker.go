// Package metrics: the Tracker implementation and its Snapshot view.
package metrics

import "time"

// Tracker accumulates performance counters for a single search invocation.
// The zero value is ready to use.
type Tracker struct {
	algorithm string
	vertices  int
	edges     int

	nodesExplored  int
	edgesRelaxed   int
	heuristicEvals int
	queueOps       int
	peakFrontier   int

	startedAt time.Time
	stoppedAt time.Time
	running   bool
}

// Snapshot is the read-only view of a Tracker, consumed by the analysis
// layer. All fields are plain values; copying a Snapshot shares nothing.
type Snapshot struct {
	// Algorithm is the descriptive engine name, e.g. "Dijkstra".
	Algorithm string

	// Vertices and Edges describe the searched graph.
	Vertices int
	Edges    int

	// NodesExplored counts closed nodes.
	NodesExplored int

	// EdgesRelaxed counts relaxations that improved a distance.
	EdgesRelaxed int

	// HeuristicEvals counts heuristic function evaluations.
	HeuristicEvals int

	// QueueOps counts priority-queue pushes and pops.
	QueueOps int

	// PeakFrontier is the high-water mark of the auxiliary structures.
	PeakFrontier int

	// ExecutionMillis is the measured wall-clock time in milliseconds.
	ExecutionMillis float64
}

// NewTracker returns a fresh Tracker.
func NewTracker() *Tracker { return &Tracker{} }

// SetAlgorithm records the descriptive engine name. Expected to be called
// once, before the search loop begins.
func (t *Tracker) SetAlgorithm(name string) { t.algorithm = name }

// SetGraphSize records the searched graph's vertex and edge counts.
// Expected to be called once, before the search loop begins.
func (t *Tracker) SetGraphSize(vertices, edges int) {
	t.vertices = vertices
	t.edges = edges
}

// Start begins wall-clock timing.
func (t *Tracker) Start() {
	t.startedAt = time.Now()
	t.running = true
}

// Stop ends wall-clock timing.
func (t *Tracker) Stop() {
	t.stoppedAt = time.Now()
	t.running = false
}

// AddNodeExplored counts one closed node.
func (t *Tracker) AddNodeExplored() { t.nodesExplored++ }

// AddEdgeRelaxed counts one improving relaxation.
func (t *Tracker) AddEdgeRelaxed() { t.edgesRelaxed++ }

// AddHeuristicEval counts one heuristic evaluation.
func (t *Tracker) AddHeuristicEval() { t.heuristicEvals++ }

// AddQueueOp counts one priority-queue push or pop.
func (t *Tracker) AddQueueOp() { t.queueOps++ }

// ObserveFrontier records a size estimate of the live auxiliary structures;
// the maximum observed value is retained.
func (t *Tracker) ObserveFrontier(size int) {
	if size > t.peakFrontier {
		t.peakFrontier = size
	}
}

// NodesExplored returns the closed-node count so far.
func (t *Tracker) NodesExplored() int { return t.nodesExplored }

// ExecutionTime returns the measured wall-clock duration. If the tracker is
// still running (or Stop was never called), it measures up to now; if Start
// was never called, it returns 0.
func (t *Tracker) ExecutionTime() time.Duration {
	if t.startedAt.IsZero() {
		return 0
	}
	end := t.stoppedAt
	if t.running || end.IsZero() {
		end = time.Now()
	}

	return end.Sub(t.startedAt)
}

// ExecutionMillis returns ExecutionTime in milliseconds.
func (t *Tracker) ExecutionMillis() float64 {
	return float64(t.ExecutionTime()) / float64(time.Millisecond)
}

// Reset clears every counter, timer and descriptive field, returning the
// tracker to its zero state for reuse.
func (t *Tracker) Reset() { *t = Tracker{} }

// Snapshot returns the read-only view of the tracker's current state.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Algorithm:       t.algorithm,
		Vertices:        t.vertices,
		Edges:           t.edges,
		NodesExplored:   t.nodesExplored,
		EdgesRelaxed:    t.edgesRelaxed,
		HeuristicEvals:  t.heuristicEvals,
		QueueOps:        t.queueOps,
		PeakFrontier:    t.peakFrontier,
		ExecutionMillis: t.ExecutionMillis(),
	}
}
