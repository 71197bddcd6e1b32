package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amazing/bfs"
	"github.com/katalvlaran/amazing/builder"
	"github.com/katalvlaran/amazing/grid"
)

// none is the empty hook context.
type none = struct{}

// link connects (x,y,0) in direction d or fails the test.
func link(t testing.TB, g *grid.Grid, x, y int, d grid.Direction) {
	t.Helper()
	_, err := builder.Link(g, g.CellAt(x, y, 0), d, grid.Flat)
	require.NoError(t, err)
}

// ring returns a 2×2 grid whose four cells form one cycle.
func ring(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	link(t, g, 0, 0, grid.Right)
	link(t, g, 1, 0, grid.Down)
	link(t, g, 1, 1, grid.Left)
	link(t, g, 0, 1, grid.Up)
	return g
}

// TestTraverse_Errors verifies that invalid inputs are rejected.
func TestTraverse_Errors(t *testing.T) {
	_, err := bfs.Traverse[none](nil, 0, none{}, bfs.Hooks[none]{})
	assert.True(t, errors.Is(err, bfs.ErrGridNil), "nil grid: %v", err)

	g := ring(t)
	for _, start := range []grid.Index{grid.None, grid.Index(g.Len()), 1 << 20} {
		_, err = bfs.Traverse[none](g, start, none{}, bfs.Hooks[none]{})
		assert.True(t, errors.Is(err, bfs.ErrInvalidStart), "start %d: %v", start, err)
	}
}

// TestTraverse_CorruptTopology sets a connection bit pointing off the grid.
func TestTraverse_CorruptTopology(t *testing.T) {
	g := ring(t)
	g.Cell(g.CellAt(1, 1, 0)).Connections.Set(grid.Right)

	_, err := bfs.Traverse[none](g, g.CellAt(0, 0, 0), none{}, bfs.Hooks[none]{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, bfs.ErrCorruptTopology), "got %v", err)
}

// TestTraverse_SingleCell visits a closed, unconnected start only.
func TestTraverse_SingleCell(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	start := g.CellAt(1, 1, 0)

	res, err := bfs.Traverse[none](g, start, none{}, bfs.Hooks[none]{})
	require.NoError(t, err)
	assert.Equal(t, []grid.Index{start}, res.Order)
	assert.Equal(t, start, res.Last)
}

// counter is a hook context recording what the hooks saw.
type counter struct {
	visits, finishes, edges int
	visited                 map[grid.Index]int
	badState                []string
}

// TestTraverse_Ring checks visit-once behaviour, unconditional edge
// reporting and the state each hook observes.
func TestTraverse_Ring(t *testing.T) {
	g := ring(t)
	ctx := &counter{visited: map[grid.Index]int{}}

	hooks := bfs.Hooks[*counter]{
		OnVisit: func(c *counter, i grid.Index) {
			c.visits++
			c.visited[i]++
			if s := g.Cell(i).State; s != grid.Discovered {
				c.badState = append(c.badState, "visit saw "+s.String())
			}
		},
		OnEdge: func(c *counter, from, to grid.Index) {
			c.edges++
			if s := g.Cell(from).State; s != grid.Discovered {
				c.badState = append(c.badState, "edge saw "+s.String())
			}
		},
		OnFinish: func(c *counter, i grid.Index) {
			c.finishes++
			if s := g.Cell(i).State; s != grid.Processed {
				c.badState = append(c.badState, "finish saw "+s.String())
			}
		},
	}

	res, err := bfs.Traverse(g, g.CellAt(0, 0, 0), ctx, hooks)
	require.NoError(t, err)

	assert.Equal(t, 4, ctx.visits)
	assert.Equal(t, 4, ctx.finishes)
	assert.Equal(t, 8, ctx.edges, "every connection is reported from both ends")
	for i, n := range ctx.visited {
		assert.Equal(t, 1, n, "cell %d visited %d times", i, n)
	}
	assert.Empty(t, ctx.badState)
	assert.Len(t, res.Order, 4)
	assert.Equal(t, g.CellAt(1, 1, 0), res.Last, "the opposite corner finishes last")

	g.Cells(func(_ grid.Index, c *grid.Cell) bool {
		if c.Z == 0 {
			assert.Equal(t, grid.Processed, c.State)
		} else {
			assert.Equal(t, grid.Undiscovered, c.State)
		}
		return true
	})
}

// TestTraverse_Order checks breadth-first order and direction scan order.
func TestTraverse_Order(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	link(t, g, 0, 0, grid.Right)
	link(t, g, 1, 0, grid.Right)
	link(t, g, 0, 0, grid.Down)
	link(t, g, 0, 1, grid.Right)

	res, err := bfs.Traverse[none](g, g.CellAt(0, 0, 0), none{}, bfs.Hooks[none]{})
	require.NoError(t, err)
	want := []grid.Index{
		g.CellAt(0, 0, 0),
		g.CellAt(1, 0, 0),
		g.CellAt(0, 1, 0),
		g.CellAt(2, 0, 0),
		g.CellAt(1, 1, 0),
	}
	assert.Equal(t, want, res.Order)
}

// TestTraverse_BackToBack runs twice on the same grid; the second run must
// not be affected by the marks of the first.
func TestTraverse_BackToBack(t *testing.T) {
	g := ring(t)
	first, err := bfs.Traverse[none](g, g.CellAt(0, 0, 0), none{}, bfs.Hooks[none]{})
	require.NoError(t, err)
	second, err := bfs.Traverse[none](g, g.CellAt(0, 0, 0), none{}, bfs.Hooks[none]{})
	require.NoError(t, err)
	assert.Equal(t, first.Order, second.Order)

	other, err := bfs.Traverse[none](g, g.CellAt(1, 1, 0), none{}, bfs.Hooks[none]{})
	require.NoError(t, err)
	assert.Len(t, other.Order, 4)
	assert.Equal(t, g.CellAt(0, 0, 0), other.Last)
}

// TestTraverse_AcrossLayers follows an overpass onto layer 1 and back.
func TestTraverse_AcrossLayers(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	up, err := builder.Link(g, g.CellAt(0, 0, 0), grid.Right, grid.Upward)
	require.NoError(t, err)
	_, err = builder.Link(g, up, grid.Right, grid.Downward)
	require.NoError(t, err)

	tree := bfs.NewTree(g)
	res, err := bfs.Traverse(g, g.CellAt(0, 0, 0), tree, bfs.TreeHooks())
	require.NoError(t, err)
	assert.Equal(t, []grid.Index{g.CellAt(0, 0, 0), g.CellAt(1, 0, 1), g.CellAt(2, 0, 0)}, res.Order)
	assert.Equal(t, 2, tree.Depth[g.CellAt(2, 0, 0)])
	assert.Equal(t, grid.None, tree.Parent[g.CellAt(1, 0, 0)], "the corridor below is not reached")
}

// TestTree_PathTo reconstructs root-to-destination paths.
func TestTree_PathTo(t *testing.T) {
	g := ring(t)
	root := g.CellAt(0, 0, 0)
	tree := bfs.NewTree(g)
	_, err := bfs.Traverse(g, root, tree, bfs.TreeHooks())
	require.NoError(t, err)

	assert.Same(t, g, tree.Grid())
	assert.Equal(t, g.CellAt(1, 1, 0), tree.Last)
	assert.Equal(t, []grid.Index{root}, tree.PathTo(root))

	// (1,1) is first reached through (1,0): Right is scanned before Down.
	want := []grid.Index{root, g.CellAt(1, 0, 0), g.CellAt(1, 1, 0)}
	assert.Equal(t, want, tree.PathTo(tree.Last))
	assert.Equal(t, 2, tree.Depth[tree.Last])

	// unreached cells have no path beyond themselves; invalid cells none at all
	assert.Equal(t, []grid.Index{g.CellAt(0, 0, 1)}, tree.PathTo(g.CellAt(0, 0, 1)))
	assert.Nil(t, tree.PathTo(grid.None))
}
