package maze_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amazing/builder"
	"github.com/katalvlaran/amazing/grid"
	"github.com/katalvlaran/amazing/maze"
)

// assertWalk checks that consecutive cells of p are connected.
func assertWalk(t *testing.T, g *grid.Grid, p []grid.Index) {
	t.Helper()
	for k := 0; k+1 < len(p); k++ {
		c := g.Cell(p[k])
		linked := false
		for d := grid.Right; d <= grid.Down; d++ {
			if c.Connected(d) && g.Neighbor(p[k], d, c.Vertical[d]) == p[k+1] {
				linked = true
			}
		}
		assert.True(t, linked, "step %d: %d -> %d", k, p[k], p[k+1])
	}
}

// TestNew_Errors checks that no partial maze is returned.
func TestNew_Errors(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Width = 0
	m, err := maze.New(cfg)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid), "got %v", err)

	cfg = maze.DefaultConfig()
	cfg.LoopChance = 2
	m, err = maze.New(cfg)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, builder.ErrInvalidProbability), "got %v", err)

	cfg = maze.DefaultConfig()
	m, err = maze.New(cfg, builder.WithOrigin(cfg.Width, 0))
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, builder.ErrOriginOutOfBounds), "got %v", err)
}

// TestDefaultConfig mirrors the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := maze.DefaultConfig()
	assert.Equal(t, 0.1, cfg.BranchChance)
	assert.Zero(t, cfg.LoopChance)
	assert.Equal(t, 0.8, cfg.BridgeChance)
	assert.Zero(t, cfg.Seed)
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)
}

// TestNew_QuerySurface checks dimensions, solution ends and the copy.
func TestNew_QuerySurface(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Seed = 2024
	m, err := maze.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.Width, m.Width())
	assert.Equal(t, cfg.Height, m.Height())
	assert.Equal(t, cfg.Width*cfg.Height*grid.Layers, m.Len())
	assert.Equal(t, int64(2024), m.Seed())
	assert.True(t, m.Grid().Cell(m.Origin()).Open)

	sol := m.Solution()
	require.GreaterOrEqual(t, len(sol), 2)
	assert.Equal(t, m.Start(), sol[0])
	assert.Equal(t, m.Finish(), sol[len(sol)-1])
	assertWalk(t, m.Grid(), sol)

	sol[0] = grid.None
	assert.NotEqual(t, grid.None, m.Solution()[0], "Solution returns a copy")
}

// TestNew_ClockSeedReplays draws a seed and rebuilds the same maze from it.
func TestNew_ClockSeedReplays(t *testing.T) {
	cfg := maze.DefaultConfig()
	a, err := maze.New(cfg)
	require.NoError(t, err)
	require.NotZero(t, a.Seed())

	cfg.Seed = a.Seed()
	b, err := maze.New(cfg)
	require.NoError(t, err)
	if diff := cmp.Diff(a.Solution(), b.Solution()); diff != "" {
		t.Errorf("replayed solution differs (-a +b):\n%s", diff)
	}
	assert.Equal(t, a.Origin(), b.Origin())
}

// TestNew_FourByFour seeds a 4×4 maze at (1,1) without branching or bridges.
func TestNew_FourByFour(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m, err := maze.New(maze.Config{Width: 4, Height: 4, Seed: seed}, builder.WithOrigin(1, 1))
		require.NoError(t, err)

		g := m.Grid()
		require.Equal(t, g.CellAt(1, 1, 0), m.Origin())
		assert.Equal(t, builder.Strands, g.Cell(m.Origin()).Degree(), "one connection per strand")

		sol := m.Solution()
		assert.GreaterOrEqual(t, len(sol), 2)
		for _, end := range []grid.Index{m.Start(), m.Finish()} {
			assert.True(t, g.Cell(end).Open)
			assert.GreaterOrEqual(t, g.Cell(end).Degree(), 1)
		}
	}
}

// TestBreakCycles leaves a tree and keeps the solution walkable.
func TestBreakCycles(t *testing.T) {
	m, err := maze.New(maze.Config{Width: 40, Height: 25, BranchChance: 0.3, LoopChance: 0.3, BridgeChance: 0.8, Seed: 7})
	require.NoError(t, err)

	before, err := m.Cycles()
	require.NoError(t, err)
	require.NotEmpty(t, before)

	n, err := m.BreakCycles()
	require.NoError(t, err)
	assert.Equal(t, len(before), n)

	after, err := m.Cycles()
	require.NoError(t, err)
	assert.Empty(t, after)
	assertWalk(t, m.Grid(), m.Solution())
}

// TestNew_BridgeHeavySeeds builds full-size mazes where bridges are always
// taken and checks each one yields a walkable solution.
func TestNew_BridgeHeavySeeds(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		m, err := maze.New(maze.Config{Width: 60, Height: 40, BranchChance: 0.5, LoopChance: 0.3, BridgeChance: 1, Seed: seed})
		require.NoError(t, err, "seed %d", seed)

		sol := m.Solution()
		require.NotEmpty(t, sol, "seed %d", seed)
		assert.Equal(t, m.Start(), sol[0])
		assert.Equal(t, m.Finish(), sol[len(sol)-1])
		assertWalk(t, m.Grid(), sol)
	}
}
