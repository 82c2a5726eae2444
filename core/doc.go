// Package core defines the graph model shared by every routelab engine:
// dense integer node identifiers, per-node coordinates, and symmetric
// weighted adjacency — plus the distance functions used both as edge-weight
// input and as admissible search heuristics.
//
// Overview:
//
//   - Node identifiers are contiguous 0..N-1 ints assigned by AddNode, which
//     lets the model (and every engine built on it) back its per-node state
//     with slices instead of maps: O(1) access and deterministic iteration.
//   - The graph is undirected by construction: AddEdge inserts the arc into
//     both endpoints' adjacency lists, so the symmetry invariant is
//     established here and never re-checked on the hot path.
//   - Each arc carries two cost attributes, Distance and Time, mirroring the
//     route data this model is derived from; engines pick one via their
//     cost-field option.
//
// Validation:
//
//   - Construction fails fast on unknown endpoints (ErrNodeNotFound) and
//     negative weights (ErrBadEdgeWeight).
//   - Validate performs the hardened sweep — an upfront negative-weight
//     pre-scan, then dangling arc targets and asymmetric arcs — for callers
//     that receive graphs from collaborators they do not trust. It is
//     O(V + E·deg) and deliberately not run on every search.
//
// Distance functions:
//
//   - Haversine: great-circle distance in kilometers (Earth radius 6371 km)
//     over geographic (lat, lon) degrees.
//   - Manhattan, Euclidean: planar metrics over the same Coord pair, for
//     graphs whose coordinates are (x, y) rather than geographic.
//
// Concurrency:
//
//   - A Graph is mutable only through AddNode/AddEdge. Once built it is safe
//     for any number of concurrent readers; routelab searches never mutate
//     the graph they are given.
package core
