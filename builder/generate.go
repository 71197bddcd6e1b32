// SPDX-License-Identifier: MIT
// Package: amazing/builder
//
// generate.go: randomized multi-strand maze growth.

package builder

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/amazing/grid"
)

// grower carries the mutable state of one Generate run.
type grower struct {
	g        *grid.Grid
	cfg      builderConfig
	frontier *queue.Queue[grid.Index]

	branch, loop, bridge float64
}

// Generate grows a maze inside g and returns the seed cell growth started
// from. g is expected to be freshly allocated; cells already open are treated
// as existing structure.
//
// branch is the chance of extending the same cell again after a successful
// extension, loop the chance of accepting a connection into an already open
// cell, bridge the chance of crossing a straight corridor on layer 1 instead.
// All three must lie in [0,1]. A random source (WithSeed or WithRand) is
// required; the RNG is drawn from in a fixed order so a seed pins the maze.
//
// Growth is iterative: a FIFO frontier of strand heads, seeded with the seed
// cell twice, is drained one cell at a time. A cell whose scan finds no
// usable direction is a dead end and is dropped; there is no backtracking.
// A direction whose neighbour already holds the facing half (the landing
// cell of an overpass crossing the current cell) is skipped like a wall.
//
// Errors: ErrGridNil, ErrInvalidProbability, ErrNeedRandSource,
// ErrOriginOutOfBounds (all wrapped with MethodGenerate).
// Complexity: O(W·H) time; every cell is enqueued at most twice.
func Generate(g *grid.Grid, branch, loop, bridge float64, opts ...Option) (grid.Index, error) {
	if g == nil {
		return grid.None, builderErrorf(MethodGenerate, ErrGridNil, "no grid to grow into")
	}
	if err := validateProbability(MethodGenerate, "branchChance", branch); err != nil {
		return grid.None, err
	}
	if err := validateProbability(MethodGenerate, "loopChance", loop); err != nil {
		return grid.None, err
	}
	if err := validateProbability(MethodGenerate, "bridgeChance", bridge); err != nil {
		return grid.None, err
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return grid.None, builderErrorf(MethodGenerate, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	seed, err := cfg.seedCell(g)
	if err != nil {
		return grid.None, err
	}

	gr := &grower{
		g:        g,
		cfg:      cfg,
		frontier: queue.New[grid.Index](),
		branch:   branch,
		loop:     loop,
		bridge:   bridge,
	}

	g.Cell(seed).Open = true
	for s := 0; s < Strands; s++ {
		gr.frontier.Enqueue(seed)
	}

	for !gr.frontier.Empty() {
		c := gr.frontier.Dequeue()
		for {
			ok, err := gr.extend(c)
			if err != nil {
				return grid.None, err
			}
			// dead end, or the branch draw says stop
			if !ok || !gr.chance(gr.branch) {
				break
			}
		}
	}

	return seed, nil
}

// chance draws once from the RNG and reports a success with probability p.
func (gr *grower) chance(p float64) bool {
	return gr.cfg.rng.Float64() < p
}

// extend tries to make one new connection out of c, scanning the four
// directions from a random offset. It reports false on a dead end.
func (gr *grower) extend(c grid.Index) (bool, error) {
	cell := gr.g.Cell(c)
	offset := grid.Direction(gr.cfg.rng.Intn(grid.Directions))

	for i := 0; i < grid.Directions; i++ {
		d := offset.Turn(i)
		if cell.Connected(d) {
			continue
		}
		n := gr.g.Neighbor(c, d, grid.Flat)
		if n == grid.None {
			continue
		}
		// the landing cell of an overpass across c already holds this side
		if gr.g.Cell(n).Connected(d.Opposite()) {
			continue
		}

		looping := gr.g.Cell(n).Open
		if looping {
			if far, ok := gr.bridgeable(n, d); ok && gr.chance(gr.bridge) {
				if err := gr.overpass(c, d); err != nil {
					return false, err
				}
				gr.frontier.Enqueue(far)
				return true, nil
			}
			if !gr.chance(gr.loop) {
				continue
			}
		}

		if _, err := gr.link(c, d, grid.Flat); err != nil {
			return false, err
		}
		// merging into existing structure leaves nothing to grow from
		if !looping {
			gr.frontier.Enqueue(n)
		}
		return true, nil
	}

	return false, nil
}

// bridgeable reports whether the open cell n can be crossed in direction d
// and returns the landing cell past it. n must be a straight corridor across
// d (connected on both sides perpendicular to d and nowhere else), the cell
// above n must be free and the landing cell must exist and still be closed.
func (gr *grower) bridgeable(n grid.Index, d grid.Direction) (grid.Index, bool) {
	var corridor grid.Mask
	corridor.Set(d.Turn(1))
	corridor.Set(d.Turn(3))
	nc := gr.g.Cell(n)
	if nc.Connections != corridor {
		return grid.None, false
	}

	above := gr.g.Cell(gr.g.CellAt(nc.X, nc.Y, nc.Z+1))
	if above == nil || above.Open || above.Connections != 0 {
		return grid.None, false
	}

	far := gr.g.Neighbor(n, d, grid.Flat)
	if far == grid.None || gr.g.Cell(far).Open {
		return grid.None, false
	}

	return far, true
}

// overpass crosses the corridor next to c in direction d: c climbs onto the
// cell above its neighbour, which descends onto the landing cell beyond.
func (gr *grower) overpass(c grid.Index, d grid.Direction) error {
	upper, err := gr.link(c, d, grid.Upward)
	if err != nil {
		return err
	}
	_, err = gr.link(upper, d, grid.Downward)
	return err
}

// link makes one paired connection and reports it to the observer, if any.
func (gr *grower) link(from grid.Index, d grid.Direction, v grid.Vertical) (grid.Index, error) {
	to, err := Link(gr.g, from, d, v)
	if err != nil {
		return grid.None, err
	}
	if gr.cfg.onLink != nil {
		gr.cfg.onLink(gr.g, from, to)
	}
	return to, nil
}
