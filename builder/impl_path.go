// Package builder: Path(n) — a planar unit-weight line.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Node i sits at planar coordinate (0, i); edges i—i+1 carry weight 1,
//     which equals the straight-line distance between neighbors, so planar
//     heuristics stay admissible on this fixture.
//
// Complexity: O(n) time and space.
package builder

import (
	"fmt"

	"github.com/routelab/routelab/core"
)

const (
	methodPath  = "Path"
	minPathSize = 1
)

// Path returns a Constructor that builds the line 0–1–…–n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minPathSize {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathSize, ErrTooFewNodes)
		}

		ids := make([]core.NodeID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddNode(core.Coord{Lat: 0, Lon: float64(i)})
		}
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(ids[i], ids[i+1], 1); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
