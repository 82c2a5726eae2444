// Package builder: Star(n) — a center with unit-weight spokes.
//
// Contract:
//   - n ≥ 2 (center plus at least one leaf, else ErrTooFewNodes).
//   - Center 0 sits at the planar origin; leaf k (1 ≤ k < n) sits on the
//     unit circle at angle 2π(k-1)/(n-1). Every spoke carries weight 1,
//     equal to the straight-line center–leaf distance.
//
// Complexity: O(n) time and space.
package builder

import (
	"fmt"
	"math"

	"github.com/routelab/routelab/core"
)

const (
	methodStar  = "Star"
	minStarSize = 2
)

// Star returns a Constructor that builds a star with center 0 and leaves
// 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minStarSize {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStar, n, minStarSize, ErrTooFewNodes)
		}

		center := g.AddNode(core.Coord{})
		for k := 1; k < n; k++ {
			angle := 2 * math.Pi * float64(k-1) / float64(n-1)
			leaf := g.AddNode(core.Coord{Lat: math.Sin(angle), Lon: math.Cos(angle)})
			if err := g.AddEdge(center, leaf, 1); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
