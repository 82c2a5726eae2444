// Package search: result type, configuration options and sentinel errors
// shared by the three engines.
package search

import (
	"errors"

	"github.com/routelab/routelab/core"
	"github.com/routelab/routelab/metrics"
)

// Sentinel errors for search invocation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to an engine.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound indicates the start or goal ID is not a node of the graph.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrInvalidGraph wraps a structural validation failure when the
	// WithValidation option is set.
	ErrInvalidGraph = errors.New("search: invalid graph")

	// ErrBadHeuristicWeight indicates WithHeuristicWeight received a
	// negative value (surfaced via panic from the option constructor).
	ErrBadHeuristicWeight = errors.New("search: heuristic weight must be non-negative")
)

// CostField selects which arc attribute an engine treats as the edge cost.
type CostField int

const (
	// CostDistance uses Arc.Distance (the default).
	CostDistance CostField = iota

	// CostTime uses Arc.Time.
	CostTime
)

// HeuristicKind selects the A* heuristic. The choice is explicit
// configuration; it is never inferred from the coordinate data.
type HeuristicKind int

const (
	// GreatCircle uses the haversine distance over geographic coordinates.
	GreatCircle HeuristicKind = iota

	// Manhattan uses the L1 distance over planar coordinates.
	Manhattan

	// Euclidean uses the L2 distance over planar coordinates.
	Euclidean
)

// Result is the outcome of one search invocation.
//
// A nil Path means the goal is unreachable from the start; that is a normal
// terminal state, reported without an error, with TotalCost zero and the
// tracker still fully populated.
type Result struct {
	// Path is the ordered node sequence start..goal, or nil if unreachable.
	Path []core.NodeID

	// TotalCost is the sum of edge costs along Path (0 if unreachable).
	TotalCost float64

	// NodesExplored counts the nodes closed by this invocation alone,
	// independent of any prior use of a shared tracker.
	NodesExplored int

	// Metrics is the snapshot of the tracker after the run.
	Metrics metrics.Snapshot
}

// Options configures a search invocation. Build it with DefaultOptions and
// the With* functional options.
type Options struct {
	// Tracker, if non-nil, is the caller-supplied tracker to populate.
	// Counters accumulate across calls unless the caller resets it.
	Tracker *metrics.Tracker

	// CostField selects the arc attribute used as edge cost.
	CostField CostField

	// Heuristic selects the A* heuristic kind. Ignored by Dijkstra and
	// Bidirectional.
	Heuristic HeuristicKind

	// HeuristicWeight scales the heuristic term in the A* priority key.
	// 1.0 preserves optimality (admissible heuristic assumed); larger
	// values trade optimality for speed.
	HeuristicWeight float64

	// Validate runs core.Graph.Validate before the search begins.
	Validate bool
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: fresh tracker,
// distance cost, great-circle heuristic at weight 1.0, no validation.
func DefaultOptions() Options {
	return Options{
		Tracker:         nil,
		CostField:       CostDistance,
		Heuristic:       GreatCircle,
		HeuristicWeight: 1.0,
		Validate:        false,
	}
}

// WithTracker supplies a caller-owned tracker. The engine mutates it during
// the run; treat it as single-use per search unless accumulation is intended.
func WithTracker(t *metrics.Tracker) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracker = t
		}
	}
}

// WithCostField selects which arc attribute to treat as the edge cost.
func WithCostField(f CostField) Option {
	return func(o *Options) { o.CostField = f }
}

// WithHeuristic selects the A* heuristic kind.
func WithHeuristic(k HeuristicKind) Option {
	return func(o *Options) { o.Heuristic = k }
}

// WithHeuristicWeight scales the heuristic term of the A* key.
// Must be non-negative; negative values panic with ErrBadHeuristicWeight.
// Weights below 1 degrade toward uniform-cost search; weights above 1
// sacrifice optimality for speed.
func WithHeuristicWeight(w float64) Option {
	if w < 0 {
		panic(ErrBadHeuristicWeight.Error())
	}

	return func(o *Options) { o.HeuristicWeight = w }
}

// WithValidation runs the graph's structural validation (dangling arcs,
// asymmetric arcs, negative weights) before searching; a failure surfaces
// as ErrInvalidGraph.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}
