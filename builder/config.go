// SPDX-License-Identifier: MIT
// Package: amazing/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generation knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil             (Generate refuses to run without one)
//   • margin   = DefaultMargin   (clamped to the grid in seedCell)
//   • origin   = unset           (seed cell is drawn from rng)
//   • onLink   = nil             (no observer)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/amazing/grid"
)

// LinkFunc observes a connection right after both halves were written.
type LinkFunc func(g *grid.Grid, from, to grid.Index)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	// RNG for every chance draw and the seed position; nil means "none given".
	rng *rand.Rand

	// Inset of a drawn seed from each grid edge.
	margin int

	// Fixed seed cell on layer 0; only used when hasOrigin is set.
	originX, originY int
	hasOrigin        bool

	// Observer called after every Link made by Generate.
	onLink LinkFunc
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		margin: DefaultMargin,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// seedCell returns the layer-0 cell growth starts from. A fixed origin wins;
// otherwise x and then y are drawn uniformly from the margin-inset rectangle.
// The margin shrinks on grids too small to honour it.
func (c builderConfig) seedCell(g *grid.Grid) (grid.Index, error) {
	if c.hasOrigin {
		i := g.CellAt(c.originX, c.originY, 0)
		if i == grid.None {
			return grid.None, builderErrorf(MethodGenerate, ErrOriginOutOfBounds,
				"origin (%d,%d) on a %dx%d grid", c.originX, c.originY, g.Width, g.Height)
		}
		return i, nil
	}

	mx := clampMargin(c.margin, g.Width)
	my := clampMargin(c.margin, g.Height)
	x := mx + c.rng.Intn(g.Width-2*mx)
	y := my + c.rng.Intn(g.Height-2*my)

	return g.CellAt(x, y, 0), nil
}

// clampMargin keeps at least one cell between the margins of a side of size n.
func clampMargin(m, n int) int {
	if limit := (n - 1) / 2; m > limit {
		m = limit
	}
	if m < 0 {
		m = 0
	}
	return m
}
