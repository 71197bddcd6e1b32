// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amazing/grid"
)

// TestNewBuilderConfig_Defaults checks the documented defaults.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no rng unless requested")
	assert.Equal(t, DefaultMargin, cfg.margin)
	assert.False(t, cfg.hasOrigin)
	assert.Nil(t, cfg.onLink)
}

// TestNewBuilderConfig_LastWins verifies options apply in order.
func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(9))
	cfg := newBuilderConfig(WithSeed(1), WithRand(r), WithMargin(2), WithMargin(3),
		WithOrigin(0, 0), WithOrigin(4, 2))
	assert.Same(t, r, cfg.rng)
	assert.Equal(t, 3, cfg.margin)
	assert.True(t, cfg.hasOrigin)
	assert.Equal(t, [2]int{4, 2}, [2]int{cfg.originX, cfg.originY})
}

// TestOptions_Panics ensures option constructors reject meaningless input.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithOnLink(nil) })
	assert.Panics(t, func() { WithMargin(-1) })
	assert.NotPanics(t, func() { WithMargin(0) })
}

// TestClampMargin covers the shrinking margin on small sides.
func TestClampMargin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		m, n, want int
	}{
		{5, 100, 5},
		{5, 11, 5},
		{5, 10, 4},
		{5, 3, 1},
		{5, 2, 0},
		{5, 1, 0},
		{0, 50, 0},
	}
	for _, tc := range cases {
		got := clampMargin(tc.m, tc.n)
		assert.Equal(t, tc.want, got, "clampMargin(%d,%d)", tc.m, tc.n)
		// at least one column must remain between the margins
		assert.Greater(t, tc.n-2*got, 0)
	}
}

// TestSeedCell_Drawn keeps a drawn seed inside the margins on layer 0.
func TestSeedCell_Drawn(t *testing.T) {
	t.Parallel()

	g, err := grid.New(20, 14)
	require.NoError(t, err)

	cfg := newBuilderConfig(WithSeed(3))
	for i := 0; i < 200; i++ {
		s, err := cfg.seedCell(g)
		require.NoError(t, err)
		c := g.Cell(s)
		require.NotNil(t, c)
		assert.Zero(t, c.Z)
		assert.True(t, c.X >= DefaultMargin && c.X < g.Width-DefaultMargin, "x=%d", c.X)
		assert.True(t, c.Y >= DefaultMargin && c.Y < g.Height-DefaultMargin, "y=%d", c.Y)
	}
}

// TestSeedCell_TinyGrid collapses to the centre cell.
func TestSeedCell_TinyGrid(t *testing.T) {
	t.Parallel()

	g, err := grid.New(3, 3)
	require.NoError(t, err)
	s, err := newBuilderConfig(WithSeed(42)).seedCell(g)
	require.NoError(t, err)
	assert.Equal(t, g.CellAt(1, 1, 0), s)
}

// TestSeedCell_Origin checks a fixed origin and its bounds check.
func TestSeedCell_Origin(t *testing.T) {
	t.Parallel()

	g, err := grid.New(4, 4)
	require.NoError(t, err)

	s, err := newBuilderConfig(WithOrigin(3, 0)).seedCell(g)
	require.NoError(t, err)
	assert.Equal(t, g.CellAt(3, 0, 0), s)

	_, err = newBuilderConfig(WithOrigin(4, 0)).seedCell(g)
	assert.True(t, errors.Is(err, ErrOriginOutOfBounds), "got %v", err)
}
