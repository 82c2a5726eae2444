// Package analysis turns metrics snapshots into human-readable complexity
// reports: theoretical operation estimates, efficiency ratios, qualitative
// insight strings, pairwise algorithm comparisons, and a bounded history of
// past runs.
//
// Overview:
//
//   - This layer is pure computation over numbers a search already
//     collected. It never re-runs an algorithm, never touches a graph, and
//     tolerates degenerate inputs (zero vertices, zero execution time)
//     without dividing by zero.
//   - Analyze maps one snapshot to a Report. The algorithm family is
//     recognized by its counters: any heuristic evaluations place the run
//     in the heuristic-guided family (branching-factor/estimated-depth
//     model), otherwise the uniform-cost model (V+E)·log2(V) applies.
//   - Compare sets two snapshots side by side: which ran faster and by what
//     factor, which explored fewer nodes and by what margin.
//   - History is a caller-owned, bounded ring buffer of snapshots — the
//     "last N runs" record. It is an explicit value handed around by the
//     caller; this package holds no ambient state.
//
// Interpretation:
//
//   - The efficiency ratio (nodes explored as a percentage of all vertices)
//     is a proxy for search focus, not a quality score; a broad sweep is
//     expected and correct for uniform-cost search on a distant goal.
//   - Theoretical estimates are coarse models for banding and comparison,
//     not predictions of wall-clock time.
package analysis
