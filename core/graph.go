// Package core: Graph construction, accessors and the hardened Validate sweep.
package core

import "fmt"

// AddNode appends a node at the given coordinate and returns its ID.
// IDs are assigned densely: the k-th call returns NodeID(k).
func (g *Graph) AddNode(c Coord) NodeID {
	g.nodes = append(g.nodes, node{coord: c})

	return NodeID(len(g.nodes) - 1)
}

// AddEdge inserts an undirected edge u—v with the given distance.
// The arc is recorded symmetrically in both endpoints' adjacency lists, so
// the undirected invariant holds by construction. A self-edge u—u is
// recorded once.
//
// The Time attribute defaults to distance; override it with WithTravelTime.
//
// Errors:
//   - ErrNodeNotFound if u or v is outside 0..N-1.
//   - ErrBadEdgeWeight if distance or travel time is negative.
func (g *Graph) AddEdge(u, v NodeID, distance float64, opts ...EdgeOption) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	if distance < 0 {
		return fmt.Errorf("%w: distance=%g", ErrBadEdgeWeight, distance)
	}

	// Resolve per-edge attributes.
	cfg := edgeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := distance
	if cfg.timeSet {
		t = cfg.time
	}
	if t < 0 {
		return fmt.Errorf("%w: time=%g", ErrBadEdgeWeight, t)
	}

	g.nodes[u].arcs = append(g.nodes[u].arcs, Arc{To: v, Distance: distance, Time: t})
	if u != v {
		g.nodes[v].arcs = append(g.nodes[v].arcs, Arc{To: u, Distance: distance, Time: t})
	}
	g.edges++

	return nil
}

// HasNode reports whether id names a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Coord returns the position of the given node.
func (g *Graph) Coord(id NodeID) (Coord, error) {
	if !g.HasNode(id) {
		return Coord{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id].coord, nil
}

// Arcs returns the adjacency list of id in insertion order, or nil for an
// unknown node. The returned slice is owned by the graph; callers must not
// modify it.
func (g *Graph) Arcs(id NodeID) []Arc {
	if !g.HasNode(id) {
		return nil
	}

	return g.nodes[id].arcs
}

// NodeCount returns the number of nodes, N.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges, counted once per pair.
func (g *Graph) EdgeCount() int { return g.edges }

// Validate performs the hardened structural sweep over the whole graph:
//
//  1. an upfront O(E) pre-scan rejects any negative arc weight anywhere
//     (ErrNegativeWeight) — a negative weight invalidates every engine, so
//     it outranks the structural checks regardless of which node carries it,
//  2. every arc targets an existing node (else ErrDanglingArc),
//  3. every arc u→v has a mirror v→u with identical attributes
//     (else ErrAsymmetricArc); a self-arc is its own mirror.
//
// The first violation is returned with its endpoints attached via %w.
// Complexity: O(V + E·deg) time, O(1) space.
func (g *Graph) Validate() error {
	for u := range g.nodes {
		for _, a := range g.nodes[u].arcs {
			if a.Distance < 0 || a.Time < 0 {
				return fmt.Errorf("%w: %d→%d distance=%g time=%g", ErrNegativeWeight, u, a.To, a.Distance, a.Time)
			}
		}
	}

	for u := range g.nodes {
		for _, a := range g.nodes[u].arcs {
			if !g.HasNode(a.To) {
				return fmt.Errorf("%w: %d→%d", ErrDanglingArc, u, a.To)
			}
			if a.To == NodeID(u) {
				continue // self-arc mirrors itself
			}
			if !g.hasMirror(NodeID(u), a) {
				return fmt.Errorf("%w: %d→%d", ErrAsymmetricArc, u, a.To)
			}
		}
	}

	return nil
}

// hasMirror reports whether the reverse of arc (u, a) exists with the same
// attributes.
func (g *Graph) hasMirror(u NodeID, a Arc) bool {
	for _, back := range g.nodes[a.To].arcs {
		if back.To == u && back.Distance == a.Distance && back.Time == a.Time {
			return true
		}
	}

	return false
}
