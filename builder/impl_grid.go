// Package builder: Grid(rows, cols) — a 4-neighborhood planar grid with
// optional obstacle carving.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   - Obstacle density from the config must lie in [0, 1) (else
//     ErrBadDensity). Cells are visited row-major; each draws once from the
//     config RNG and becomes an obstacle below the density threshold.
//     Surviving cells receive dense IDs in row-major order, so the graph's
//     0..N-1 invariant holds even with holes in the grid.
//   - Node (r, c) sits at planar coordinate (r, c); edges connect right and
//     bottom neighbors that both survived, weight 1.
//
// Determinism: fixed seed ⇒ fixed obstacle mask ⇒ fixed graph.
// Complexity: O(rows·cols) time and space.
package builder

import (
	"fmt"

	"github.com/routelab/routelab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid,
// carving out cells per the config's obstacle density.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		if cfg.obstacleDensity < 0 || cfg.obstacleDensity >= 1 {
			return fmt.Errorf("%s: density=%g: %w", methodGrid, cfg.obstacleDensity, ErrBadDensity)
		}

		// 1) Decide survivors row-major and assign dense IDs as we go.
		ids := make([]core.NodeID, rows*cols) // index r*cols+c; unreached-style -1 for obstacles
		for i := range ids {
			ids[i] = core.NodeID(-1)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if cfg.obstacleDensity > 0 && cfg.rng.Float64() < cfg.obstacleDensity {
					continue // obstacle: no node
				}
				ids[r*cols+c] = g.AddNode(core.Coord{Lat: float64(r), Lon: float64(c)})
			}
		}

		// 2) Connect right and bottom neighbors that both survived.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if u < 0 {
					continue
				}
				if c+1 < cols {
					if v := ids[r*cols+c+1]; v >= 0 {
						if err := g.AddEdge(u, v, 1); err != nil {
							return fmt.Errorf("%s: %w", methodGrid, err)
						}
					}
				}
				if r+1 < rows {
					if v := ids[(r+1)*cols+c]; v >= 0 {
						if err := g.AddEdge(u, v, 1); err != nil {
							return fmt.Errorf("%s: %w", methodGrid, err)
						}
					}
				}
			}
		}

		return nil
	}
}
