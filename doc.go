// Package routelab is an in-memory laboratory for shortest-path search over
// weighted route graphs — three interchangeable engines plus the
// instrumentation that makes their behavior comparable.
//
// 🚀 What is routelab?
//
//	A small, focused library that brings together:
//		• Core primitives: dense integer-ID nodes with coordinates & symmetric weighted adjacency
//		• Search engines: uniform-cost (Dijkstra), heuristic-guided (A*), bidirectional meet-in-the-middle
//		• Instrumentation: per-run performance trackers (nodes explored, relaxations, heap ops, timing)
//		• Analysis: Big-O-style reports, pairwise algorithm comparison, bounded run history
//		• Fixtures: deterministic synthetic graphs (paths, stars, grids with obstacles, geo clouds)
//
// ✨ Why choose routelab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same graph, same options, same answer, every run
//   - Pure Go – no cgo, no hidden deps
//   - Comparable – every engine feeds the same tracker, so numbers line up
//
// Everything is organized under five subpackages:
//
//	core/     — Graph, Coord, Arc types, symmetric construction & great-circle math
//	metrics/  — the per-invocation performance Tracker and its read-only Snapshot
//	search/   — Dijkstra, AStar, Bidirectional over one shared traversal skeleton
//	analysis/ — complexity reports, comparisons and the bounded History ring
//	builder/  — deterministic graph constructors for tests, benches and demos
//
// Quick ASCII example:
//
//	    0───1───2───3───4
//	    └───────10──────┘
//
//	a five-node line with a weight-10 shortcut; Dijkstra still walks the line.
//
// Dive into the package docs for full examples and the exact counter
// semantics each engine guarantees.
//
//	go get github.com/routelab/routelab
package routelab
