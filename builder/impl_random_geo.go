// Package builder: RandomGeo(n) — a connected geographic point cloud.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Nodes scatter within ±0.1° of the config anchor (New York City unless
//     WithAnchor overrides it). A chain 0–1–…–n-1 guarantees connectivity;
//     each node then draws 1..4 random extra links (no self-links, no
//     duplicates).
//   - Every edge weighs its haversine distance, so the great-circle
//     heuristic is admissible on this fixture by construction. Travel time
//     scatters uniformly in [0.8, 1.2]× the distance, giving the time cost
//     field something to disagree about.
//
// Determinism: fixed seed and anchor ⇒ fixed coordinates and topology.
// Complexity: O(n·deg) time, O(n) space beyond the graph.
package builder

import (
	"fmt"

	"github.com/routelab/routelab/core"
)

const (
	methodRandomGeo  = "RandomGeo"
	minRandomGeoSize = 2
	geoJitterDeg     = 0.1
	maxExtraLinks    = 4
)

// RandomGeo returns a Constructor that builds an n-node geographic graph
// around the config anchor.
func RandomGeo(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minRandomGeoSize {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRandomGeo, n, minRandomGeoSize, ErrTooFewNodes)
		}

		// 1) Scatter nodes around the anchor.
		ids := make([]core.NodeID, n)
		coords := make([]core.Coord, n)
		for i := 0; i < n; i++ {
			coords[i] = core.Coord{
				Lat: cfg.anchor.Lat + (cfg.rng.Float64()*2-1)*geoJitterDeg,
				Lon: cfg.anchor.Lon + (cfg.rng.Float64()*2-1)*geoJitterDeg,
			}
			ids[i] = g.AddNode(coords[i])
		}

		// connect links an i—j pair with haversine weight and jittered time.
		connect := func(i, j int) error {
			d := core.Haversine(coords[i], coords[j])
			t := d * (0.8 + 0.4*cfg.rng.Float64())

			return g.AddEdge(ids[i], ids[j], d, core.WithTravelTime(t))
		}

		// 2) Chain for guaranteed connectivity.
		for i := 0; i+1 < n; i++ {
			if err := connect(i, i+1); err != nil {
				return fmt.Errorf("%s: %w", methodRandomGeo, err)
			}
		}

		// 3) Random extra links for branching.
		for i := 0; i < n; i++ {
			extra := 1 + cfg.rng.Intn(min(maxExtraLinks, n-1))
			for k := 0; k < extra; k++ {
				j := cfg.rng.Intn(n)
				if j == i || linked(g, ids[i], ids[j]) {
					continue
				}
				if err := connect(i, j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomGeo, err)
				}
			}
		}

		return nil
	}
}

// linked reports whether u already has an arc to v.
func linked(g *core.Graph, u, v core.NodeID) bool {
	for _, a := range g.Arcs(u) {
		if a.To == v {
			return true
		}
	}

	return false
}
