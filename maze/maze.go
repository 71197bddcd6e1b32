package maze

import (
	"fmt"
	"time"

	"github.com/katalvlaran/amazing/builder"
	"github.com/katalvlaran/amazing/cycles"
	"github.com/katalvlaran/amazing/diameter"
	"github.com/katalvlaran/amazing/grid"
)

// Config is the plain configuration of a maze.
type Config struct {
	Width, Height int

	// BranchChance, LoopChance and BridgeChance are passed to
	// builder.Generate; each must lie in [0,1].
	BranchChance float64
	LoopChance   float64
	BridgeChance float64

	// Seed pins the random source. Zero draws one from the clock; the value
	// used is reported by Maze.Seed.
	Seed int64
}

// DefaultConfig returns a 60×40 maze with sparse branching, no loops and
// frequent bridges.
func DefaultConfig() Config {
	return Config{
		Width:        60,
		Height:       40,
		BranchChance: 0.1,
		LoopChance:   0,
		BridgeChance: 0.8,
	}
}

// Maze is a generated maze and its solution.
type Maze struct {
	g        *grid.Grid
	seed     int64
	origin   grid.Index
	solution []grid.Index
}

// New builds a maze from cfg. Extra builder options are applied after the
// seed, so WithOrigin, WithMargin and WithOnLink can be passed through.
// Either a complete maze or an error is returned.
func New(cfg Config, opts ...builder.Option) (*Maze, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("maze: %dx%d: %w", cfg.Width, cfg.Height, err)
	}

	seed := cfg.Seed
	for seed == 0 {
		seed = time.Now().UnixNano()
	}

	all := make([]builder.Option, 0, len(opts)+1)
	all = append(all, builder.WithSeed(seed))
	all = append(all, opts...)

	origin, err := builder.Generate(g, cfg.BranchChance, cfg.LoopChance, cfg.BridgeChance, all...)
	if err != nil {
		return nil, fmt.Errorf("maze: generate: %w", err)
	}
	solution, err := diameter.Select(g, origin)
	if err != nil {
		return nil, fmt.Errorf("maze: solution: %w", err)
	}

	return &Maze{g: g, seed: seed, origin: origin, solution: solution}, nil
}

// Grid returns the underlying grid. Callers must not add or remove
// connections except through builder.Link, builder.Unlink or BreakCycles.
func (m *Maze) Grid() *grid.Grid { return m.g }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.g.Width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.g.Height }

// Len returns the number of cells across all layers.
func (m *Maze) Len() int { return m.g.Len() }

// Seed returns the seed the maze was grown with.
func (m *Maze) Seed() int64 { return m.seed }

// Origin returns the cell growth started from.
func (m *Maze) Origin() grid.Index { return m.origin }

// Solution returns a copy of the path from Start to Finish.
func (m *Maze) Solution() []grid.Index {
	out := make([]grid.Index, len(m.solution))
	copy(out, m.solution)
	return out
}

// Start returns the first cell of the solution.
func (m *Maze) Start() grid.Index { return m.solution[0] }

// Finish returns the last cell of the solution.
func (m *Maze) Finish() grid.Index { return m.solution[len(m.solution)-1] }

// Cycles reports one cycle per loop of the maze, searched from Start.
func (m *Maze) Cycles() ([]cycles.Cycle, error) {
	return cycles.Detect(m.g, m.Start())
}

// BreakCycles removes the back-edge of every cycle, leaving a tree, and
// returns how many were removed. Detection from Start rebuilds the same BFS
// tree the solution was read from, so the solution path is never cut.
func (m *Maze) BreakCycles() (int, error) {
	found, err := m.Cycles()
	if err != nil {
		return 0, err
	}
	for k, cy := range found {
		if err := cycles.Break(m.g, cy); err != nil {
			return k, err
		}
	}
	return len(found), nil
}
