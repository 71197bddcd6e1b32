package cycles

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/amazing/bfs"
	"github.com/katalvlaran/amazing/builder"
	"github.com/katalvlaran/amazing/grid"
)

// ErrNotInGrid is returned by Break when the back-edge of a cycle is no
// longer a connection of the grid.
var ErrNotInGrid = errors.New("cycles: back-edge not found")

// scan is the traversal context of Detect.
type scan struct {
	*bfs.Tree
	found []Cycle
}

// edge classifies p→c: a tree edge back to the parent, a cross edge into the
// frontier, a back-edge closing a cycle, or a first discovery.
func (s *scan) edge(p, c grid.Index) {
	if c == s.Parent[p] {
		return
	}
	switch s.Grid().Cell(c).State {
	case grid.Discovered:
		// reported again, from the other end, once c is processed
		return
	case grid.Processed:
		s.found = append(s.found, s.close(p, c))
	default:
		s.Discover(p, c)
	}
}

// close rebuilds the cycle through the back-edge p→c. Both chains are walked
// up until they meet; the result runs p … ancestor … c and repeats p.
func (s *scan) close(p, c grid.Index) Cycle {
	a, b := p, c
	var left, right []grid.Index

	// equalise depths first
	for s.Depth[b] > s.Depth[a] {
		right = append(right, b)
		b = s.Parent[b]
	}
	for s.Depth[a] > s.Depth[b] {
		left = append(left, a)
		a = s.Parent[a]
	}
	// then climb in lockstep
	for a != b {
		left = append(left, a)
		right = append(right, b)
		a, b = s.Parent[a], s.Parent[b]
	}

	cells := make([]grid.Index, 0, len(left)+len(right)+2)
	cells = append(cells, left...)
	cells = append(cells, a)
	for k := len(right) - 1; k >= 0; k-- {
		cells = append(cells, right[k])
	}
	cells = append(cells, cells[0])

	return Cycle{Cells: cells, From: p, To: c}
}

// Detect reports one cycle per back-edge of the component reachable from
// start, in traversal order. A loop-free component yields no cycles.
// Errors from the traversal (bfs.ErrGridNil, bfs.ErrInvalidStart,
// bfs.ErrCorruptTopology) are returned wrapped.
func Detect(g *grid.Grid, start grid.Index) ([]Cycle, error) {
	if g == nil {
		return nil, fmt.Errorf("cycles: Detect: %w", bfs.ErrGridNil)
	}

	s := &scan{Tree: bfs.NewTree(g)}
	if _, err := bfs.Traverse(g, start, s, bfs.Hooks[*scan]{OnEdge: (*scan).edge}); err != nil {
		return nil, fmt.Errorf("cycles: Detect: %w", err)
	}

	return s.found, nil
}

// Break removes the back-edge of cy from g, both halves. The cells stay
// open. Returns ErrNotInGrid if the connection is already gone.
func Break(g *grid.Grid, cy Cycle) error {
	if g == nil {
		return fmt.Errorf("cycles: Break: %w", bfs.ErrGridNil)
	}
	from := g.Cell(cy.From)
	if from == nil {
		return fmt.Errorf("%w: cell %d", ErrNotInGrid, cy.From)
	}
	for d := grid.Right; d <= grid.Down; d++ {
		if from.Connected(d) && g.Neighbor(cy.From, d, from.Vertical[d]) == cy.To {
			if _, err := builder.Unlink(g, cy.From, d); err != nil {
				return fmt.Errorf("cycles: Break: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("%w: %d -> %d", ErrNotInGrid, cy.From, cy.To)
}
