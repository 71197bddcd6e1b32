package diameter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/amazing/bfs"
	"github.com/katalvlaran/amazing/grid"
)

// ErrNoSolution is returned when no path can be selected.
var ErrNoSolution = errors.New("diameter: no solution path")

// lastFinished records the most recently finished cell of a sweep.
func lastFinished(last *grid.Index, c grid.Index) {
	*last = c
}

// Select returns the approximate diameter path of the maze component that
// contains seed. The first element is the start, the last the finish; a maze
// of a single open cell yields a one-element path.
func Select(g *grid.Grid, seed grid.Index) ([]grid.Index, error) {
	if g != nil {
		if c := g.Cell(seed); c != nil && !c.Open {
			return nil, fmt.Errorf("%w: seed cell (%d,%d,%d) is closed", ErrNoSolution, c.X, c.Y, c.Z)
		}
	}

	// pass 1: any cell far from the seed
	far := grid.None
	if _, err := bfs.Traverse(g, seed, &far, bfs.Hooks[*grid.Index]{OnFinish: lastFinished}); err != nil {
		return nil, fmt.Errorf("diameter: sweep from seed: %w", err)
	}

	// pass 2: the cell farthest from it, with back-pointers
	tree := bfs.NewTree(g)
	if _, err := bfs.Traverse(g, far, tree, bfs.TreeHooks()); err != nil {
		return nil, fmt.Errorf("diameter: sweep from %d: %w", far, err)
	}

	path := tree.PathTo(tree.Last)
	if len(path) == 0 {
		return nil, ErrNoSolution
	}

	return path, nil
}
