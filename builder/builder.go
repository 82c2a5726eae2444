// Package builder: orchestrator, options and sentinel errors.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/routelab/routelab/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrBadDensity indicates an obstacle density outside [0, 1).
	ErrBadDensity = errors.New("builder: obstacle density out of range")
)

// defaultAnchor is the geographic center RandomGeo scatters around.
var defaultAnchor = core.Coord{Lat: 40.7128, Lon: -74.0060}

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors validate their parameters early, return sentinel
// errors, and preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg config) error

// config holds the resolved builder configuration.
type config struct {
	rng             *rand.Rand
	anchor          core.Coord
	obstacleDensity float64
}

// Option configures Build via functional arguments.
type Option func(*config)

// WithSeed seeds the config RNG; fixing the seed freezes every stochastic
// constructor (Grid obstacles, RandomGeo topology).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAnchor sets the geographic center RandomGeo scatters around.
func WithAnchor(a core.Coord) Option {
	return func(c *config) { c.anchor = a }
}

// WithObstacleDensity sets the fraction of grid cells carved out as
// obstacles, in [0, 1). Validated when Grid runs.
func WithObstacleDensity(d float64) Option {
	return func(c *config) { c.obstacleDensity = d }
}

// newConfig resolves options over the deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:    rand.New(rand.NewSource(1)),
		anchor: defaultAnchor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Build creates an empty core.Graph, resolves the builder options, and
// applies the constructors in order. The first constructor error is wrapped
// and returned; no partial cleanup is attempted.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
