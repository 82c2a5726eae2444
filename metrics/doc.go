// Package metrics provides the per-invocation performance Tracker that every
// routelab search engine threads through its run, and the read-only Snapshot
// the analysis layer consumes.
//
// Overview:
//
//   - A Tracker owns no graph state; it only observes a search: wall-clock
//     timing, monotonically incrementing counters (nodes explored, edges
//     relaxed, heuristic evaluations, priority-queue operations), a frontier
//     high-water mark, and one-time descriptive fields (algorithm name,
//     vertex and edge counts) set before the loop begins.
//   - Lifecycle: created fresh by the engine or supplied by the caller via
//     the search WithTracker option; mutated only by the engine during its
//     run; read afterwards through Snapshot. One tracker per search call —
//     re-supplying a used tracker accumulates counters across calls, which
//     is only correct when that accumulation is intended (multi-phase
//     pipelines). Call Reset otherwise.
//
// Counter semantics (shared by all three engines, so numbers line up):
//
//   - AddNodeExplored: a node left the frontier and was closed (stale
//     heap entries discarded at pop are NOT counted).
//   - AddEdgeRelaxed:  a relaxation improved a node's best known distance.
//   - AddHeuristicEval: one heuristic function evaluation (A* only).
//   - AddQueueOp:      one priority-queue push or pop, stale pops included.
//   - ObserveFrontier: size estimate of the live auxiliary structures at
//     relaxation time; the maximum observed is retained.
//
// Timing is millisecond-precision wall clock. ExecutionMillis may be read
// while the tracker is still running; it then measures up to "now".
//
// Concurrency: a Tracker is single-threaded by contract (one search call,
// one tracker, synchronous execution); it carries no locks.
package metrics
