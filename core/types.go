// Package core: central types and sentinel errors for the routelab graph
// model. This file declares NodeID, Coord, Arc, Graph, EdgeOption and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound  - an operation referenced a node ID outside 0..N-1.
//	ErrBadEdgeWeight - a negative distance or travel time was supplied.
//	ErrDanglingArc   - Validate found an arc pointing at a missing node.
//	ErrAsymmetricArc - Validate found an arc without its mirror.
//	ErrNegativeWeight- Validate found a negative arc weight.
package core

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadEdgeWeight indicates a negative distance or travel time passed to AddEdge.
	ErrBadEdgeWeight = errors.New("core: edge weight must be non-negative")

	// ErrDanglingArc indicates an adjacency entry whose target node does not exist.
	ErrDanglingArc = errors.New("core: arc targets missing node")

	// ErrAsymmetricArc indicates an arc whose mirror is absent from the target's
	// adjacency list, violating the undirected invariant.
	ErrAsymmetricArc = errors.New("core: arc has no mirror")

	// ErrNegativeWeight indicates a negative arc weight detected by Validate.
	ErrNegativeWeight = errors.New("core: negative arc weight")
)

// NodeID identifies a node within its Graph. IDs are dense and zero-based:
// the k-th AddNode call returns k.
type NodeID int

// Coord is a node position. Geographic graphs store latitude and longitude
// in degrees; planar graphs store (x, y) in (Lon, Lat). The interpretation
// is chosen by the caller through the heuristic it selects, never inferred.
type Coord struct {
	// Lat is the latitude in degrees (or the y ordinate on planar graphs).
	Lat float64

	// Lon is the longitude in degrees (or the x ordinate on planar graphs).
	Lon float64
}

// Arc is one direction of an undirected edge: a reachable neighbor together
// with the edge's cost attributes.
//
// Distance is the primary weight (kilometers for geographic graphs).
// Time is an alternative cost attribute (e.g. travel time); it defaults to
// Distance when not set explicitly via WithTravelTime.
type Arc struct {
	// To is the neighbor node ID.
	To NodeID

	// Distance is the primary edge weight. Non-negative.
	Distance float64

	// Time is the alternative edge weight. Non-negative.
	Time float64
}

// node is the internal per-node record: position plus ordered adjacency.
type node struct {
	coord Coord
	arcs  []Arc
}

// Graph is an undirected weighted graph over dense integer node IDs.
//
// The zero value is an empty graph ready for AddNode. Graph is not safe for
// concurrent mutation; once built it is safe for concurrent readers.
type Graph struct {
	nodes []node
	edges int // undirected pairs, counted once per AddEdge
}

// EdgeOption customizes a single AddEdge call.
type EdgeOption func(*edgeConfig)

// edgeConfig holds resolved per-edge attributes.
type edgeConfig struct {
	time    float64
	timeSet bool
}

// WithTravelTime sets the Time attribute of the edge independently of its
// Distance. Negative values surface as ErrBadEdgeWeight from AddEdge.
func WithTravelTime(t float64) EdgeOption {
	return func(c *edgeConfig) {
		c.time = t
		c.timeSet = true
	}
}

// NewGraph returns an empty Graph with capacity for hint nodes.
// A non-positive hint is treated as zero.
func NewGraph(hint int) *Graph {
	if hint < 0 {
		hint = 0
	}

	return &Graph{nodes: make([]node, 0, hint)}
}
