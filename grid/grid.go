// Package grid provides the fixed-size layered cell storage of a maze.
//
// A Grid is allocated once with every cell closed and unconnected. It is
// never resized. All lookups go through CellAt, which is the single place
// where coordinates are bounds-checked.
package grid

// Grid owns every cell of a maze. Width and Height are fixed at construction;
// the layer count is the package constant Layers.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// New allocates a width×height×Layers grid of closed cells.
// Returns ErrEmptyGrid when width or height is below 1.
// Complexity: O(W·H·Layers) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height*Layers),
	}
	for z := 0; z < Layers; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := &g.cells[g.index(x, y, z)]
				c.X, c.Y, c.Z = x, y, z
			}
		}
	}

	return g, nil
}

// Dimensions returns how many whole cellSize tiles of pixelSize pixels fit
// in a screenW×screenH viewport. Partial tiles are dropped.
// Returns ErrBadViewport for non-positive pixel or cell sizes, and
// ErrEmptyGrid when not even one tile fits.
func Dimensions(screenW, screenH, pixelSize, cellSize int) (width, height int, err error) {
	if pixelSize < 1 || cellSize < 1 {
		return 0, 0, ErrBadViewport
	}
	width = screenW / pixelSize / cellSize
	height = screenH / pixelSize / cellSize
	if width < 1 || height < 1 {
		return 0, 0, ErrEmptyGrid
	}

	return width, height, nil
}

// Len returns the number of cells across all layers.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y,z) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && z >= 0 && z < Layers
}

// CellAt returns the Index of (x,y,z), or None if any coordinate is out of
// range. It is the only bounds check in the package.
// Complexity: O(1).
func (g *Grid) CellAt(x, y, z int) Index {
	if !g.InBounds(x, y, z) {
		return None
	}
	return Index(g.index(x, y, z))
}

// Neighbor applies the unit step of d and the layer delta v to cell i and
// returns the resulting cell, or None when i is invalid or the step leaves
// the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(i Index, d Direction, v Vertical) Index {
	c := g.Cell(i)
	if c == nil || !d.Valid() {
		return None
	}
	dx, dy := d.Step()
	return g.CellAt(c.X+dx, c.Y+dy, c.Z+int(v))
}

// Cell returns the cell behind i, or nil when i does not address a cell.
// The pointer stays valid for the lifetime of the grid.
func (g *Grid) Cell(i Index) *Cell {
	if i < 0 || int(i) >= len(g.cells) {
		return nil
	}
	return &g.cells[i]
}

// Coordinate converts an Index back to (x,y,z).
// Complexity: O(1).
func (g *Grid) Coordinate(i Index) (x, y, z int) {
	layer := g.Width * g.Height
	n := int(i)
	return n % g.Width, (n % layer) / g.Width, n / layer
}

// Cells calls fn for every cell in index order until fn returns false.
func (g *Grid) Cells(fn func(i Index, c *Cell) bool) {
	for i := range g.cells {
		if !fn(Index(i), &g.cells[i]) {
			return
		}
	}
}

// ResetTraversal marks every cell Undiscovered.
// Complexity: O(W·H·Layers).
func (g *Grid) ResetTraversal() {
	for i := range g.cells {
		g.cells[i].State = Undiscovered
	}
}

// index maps (x,y,z) to x + W·y + W·H·z.
func (g *Grid) index(x, y, z int) int {
	return x + g.Width*y + g.Width*g.Height*z
}
