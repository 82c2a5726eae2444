// Package builder provides deterministic synthetic graph constructors for
// routelab tests, benchmarks and demos: lines, stars, obstacle grids and
// geographic point clouds.
//
// Overview:
//
//   - One orchestrator, Build(opts, cons...): resolves the functional
//     options into an immutable config, creates an empty core.Graph and
//     applies the constructors in order. Same arguments, same seed, same
//     constructor order ⇒ identical graph, every time.
//   - Constructors are closures over their own parameters; they validate
//     early, return sentinel errors, and never panic at runtime.
//
// Constructors:
//
//   - Path(n):          planar line 0–1–…–n-1 with unit-weight edges.
//   - Star(n):          center 0 with leaves 1..n-1 on the unit circle.
//   - Grid(rows, cols): 4-neighborhood planar grid, row-major IDs; the
//     obstacle density option carves nodes out before IDs are assigned, so
//     identifiers stay dense (the surviving nodes renumber 0..N-1).
//   - RandomGeo(n):     points jittered around an anchor coordinate (New
//     York City by default), chained for connectivity plus a few random
//     extra links, haversine edge weights, travel times scattered around
//     the distance.
//
// Errors (sentinel):
//
//   - ErrTooFewNodes if a size parameter is below its minimum.
//   - ErrBadDensity  if the obstacle density is outside [0, 1).
//
// Determinism:
//
//   - All randomness flows through the config RNG seeded by WithSeed
//     (default seed 1). Iteration and insertion orders are fixed.
package builder
