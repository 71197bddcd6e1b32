package convert

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/amazing/grid"
)

// ToGonum exports the connection graph of g. Every open cell becomes a node
// whose ID is its grid.Index; every connection pair becomes one undirected
// edge. Closed cells are left out. A nil grid yields an empty graph.
// Complexity: O(W·H).
func ToGonum(g *grid.Grid) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	if g == nil {
		return out
	}

	g.Cells(func(i grid.Index, c *grid.Cell) bool {
		if c.Open {
			out.AddNode(simple.Node(i))
		}
		return true
	})
	g.Cells(func(i grid.Index, c *grid.Cell) bool {
		for d := grid.Right; d <= grid.Down; d++ {
			if !c.Connected(d) {
				continue
			}
			// each pair once, from its lower end
			n := g.Neighbor(i, d, c.Vertical[d])
			if n > i {
				out.SetEdge(out.NewEdge(simple.Node(i), simple.Node(n)))
			}
		}
		return true
	})

	return out
}

// Stats summarises the shape of a maze.
type Stats struct {
	// Cells is the number of cells across all layers.
	Cells int
	// Open is the number of cells that are part of the maze.
	Open int
	// Connections is the number of connection pairs.
	Connections int
	// Bridges is the number of overpasses; each spans two vertical pairs.
	Bridges int
	// DeadEnds is the number of cells with exactly one connection.
	DeadEnds int
	// Components is the number of connected pieces of open cells.
	Components int
	// CycleRank is E−V+Components, the number of independent cycles.
	CycleRank int
}

// Analyze computes Stats for g. A nil grid yields zero Stats.
func Analyze(g *grid.Grid) Stats {
	var s Stats
	if g == nil {
		return s
	}

	vertical := 0
	g.Cells(func(_ grid.Index, c *grid.Cell) bool {
		s.Cells++
		if c.Open {
			s.Open++
		}
		if c.Degree() == 1 {
			s.DeadEnds++
		}
		for d := grid.Right; d <= grid.Down; d++ {
			if c.Connected(d) && c.Vertical[d] != grid.Flat {
				vertical++
			}
		}
		return true
	})
	// both halves of both pairs of an overpass are vertical
	s.Bridges = vertical / 4

	ug := ToGonum(g)
	s.Connections = ug.Edges().Len()
	s.Components = len(topo.ConnectedComponents(ug))
	s.CycleRank = s.Connections - s.Open + s.Components

	return s
}
