// Package search provides three interchangeable shortest-path engines over a
// core.Graph — uniform-cost (Dijkstra), heuristic-guided (A*), and
// bidirectional meet-in-the-middle — all instrumented through a shared
// metrics.Tracker so their behavior is directly comparable.
//
// Overview:
//
//   - All three engines are single-target: they stop as soon as the goal is
//     finalized, not after settling every vertex.
//   - One traversal skeleton serves Dijkstra and A*: a lazy-decrease-key
//     min-heap frontier, a closed set consulted at pop time, and a pluggable
//     priority key — the raw distance for Dijkstra, g + w·h for A*. The
//     bidirectional engine interleaves two such uniform-cost passes within
//     one thread of control, strictly alternating.
//   - Stale heap entries are tolerated rather than decrease-keyed: a shorter
//     path pushes a duplicate, and outdated entries are discarded when
//     popped against the closed set. A closed node is never reopened, which
//     is sound for the non-negative weights this package requires.
//
// Contracts:
//
//   - An unreachable goal is a normal terminal outcome, not an error: the
//     Result carries a nil Path and zero TotalCost, with the tracker fully
//     populated.
//   - Unknown start/goal IDs fail fast with ErrNodeNotFound so they can
//     never be mistaken for unreachability.
//   - Determinism: the same graph, endpoints and options produce the same
//     path, cost and counters on every run. Ties between equal priority
//     keys resolve by binary-heap order, which is fixed for a fixed
//     insertion sequence.
//
// Complexity:
//
//   - Dijkstra / A*:  O((V + E) log V) time, O(V + E) space
//     (heap may hold up to E entries under lazy decrease-key).
//   - Bidirectional:  same bounds; on roughly symmetric graphs each side
//     explores about half the radius, which is the point — verify it with
//     the shared tracker's NodesExplored.
//
// Options:
//
//   - WithTracker(t):          thread a caller-owned tracker through the run.
//   - WithCostField(f):        which arc attribute is the cost (distance/time).
//   - WithHeuristic(kind):     GreatCircle, Manhattan or Euclidean (A* only);
//     an explicit choice, never inferred from the data.
//   - WithHeuristicWeight(w):  scales the heuristic term; w > 1 trades
//     optimality for speed, w < 1 degrades toward uniform-cost.
//   - WithValidation():        run core.Graph.Validate before searching.
//
// Errors (sentinel):
//
//   - ErrNilGraph           if the graph pointer is nil.
//   - ErrNodeNotFound       if start or goal is not a node of the graph.
//   - ErrInvalidGraph       wraps a core.Validate failure under WithValidation.
//   - ErrBadHeuristicWeight (via panic) if WithHeuristicWeight gets w < 0.
//
// Heuristic admissibility:
//
//   - A* returns cost-optimal paths only if the selected heuristic never
//     overestimates the true remaining cost. GreatCircle over geographic
//     coordinates and Manhattan/Euclidean over planar ones are admissible
//     exactly when edge costs are at least the straight-line distance
//     between their endpoints — the caller must ensure that, this package
//     does not check it.
package search
