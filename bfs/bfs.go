// Package bfs provides breadth-first traversal over the connection graph of
// a grid.Grid, driven by caller-supplied hooks.
//
// Traverse explores cells in increasing distance from a start cell and
// reports visits, followed connections and finished cells to its hooks.
package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/amazing/grid"
)

// walker encapsulates mutable BFS state for one run.
type walker[T any] struct {
	g     *grid.Grid
	ctx   T
	hooks Hooks[T]
	queue *queue.Queue[grid.Index]
	res   *Result
}

// Traverse runs breadth-first search on g from start, handing ctx to every
// hook. It resets the State of every cell before it begins.
// Returns ErrGridNil or ErrInvalidStart for invalid input and
// ErrCorruptTopology if a connection resolves to no cell.
func Traverse[T any](g *grid.Grid, start grid.Index, ctx T, hooks Hooks[T]) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if g.Cell(start) == nil {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidStart, start)
	}

	g.ResetTraversal()

	w := &walker[T]{
		g:     g,
		ctx:   ctx,
		hooks: hooks.withDefaults(),
		queue: queue.New[grid.Index](),
		res:   &Result{Order: make([]grid.Index, 0), Last: grid.None},
	}

	// Seed the frontier with the start cell.
	w.enqueue(start)

	return w.res, w.loop()
}

// enqueue marks c Discovered and appends it to the frontier.
func (w *walker[T]) enqueue(c grid.Index) {
	w.g.Cell(c).State = grid.Discovered
	w.queue.Enqueue(c)
}

// loop processes the frontier until it is empty or a connection is corrupt.
func (w *walker[T]) loop() error {
	for !w.queue.Empty() {
		c := w.queue.Dequeue()
		w.visit(c)
		if err := w.expand(c); err != nil {
			return err
		}
		w.finish(c)
	}
	return nil
}

// visit records c in Order and calls OnVisit.
func (w *walker[T]) visit(c grid.Index) {
	w.res.Order = append(w.res.Order, c)
	w.hooks.OnVisit(w.ctx, c)
}

// expand follows every connection of c, calls OnEdge for each and enqueues
// neighbours seen for the first time.
func (w *walker[T]) expand(c grid.Index) error {
	cell := w.g.Cell(c)
	for d := grid.Right; d <= grid.Down; d++ {
		if !cell.Connected(d) {
			continue
		}
		n := w.g.Neighbor(c, d, cell.Vertical[d])
		if n == grid.None {
			return fmt.Errorf("%w: cell (%d,%d,%d) direction %s vertical %s",
				ErrCorruptTopology, cell.X, cell.Y, cell.Z, d, cell.Vertical[d])
		}

		w.hooks.OnEdge(w.ctx, c, n)
		// first time seen?
		if w.g.Cell(n).State == grid.Undiscovered {
			w.enqueue(n)
		}
	}
	return nil
}

// finish marks c Processed and calls OnFinish.
func (w *walker[T]) finish(c grid.Index) {
	w.g.Cell(c).State = grid.Processed
	w.res.Last = c
	w.hooks.OnFinish(w.ctx, c)
}
