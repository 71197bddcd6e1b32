// Package bfs provides hooks, errors and result types for breadth-first
// traversal over a grid.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/amazing/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrInvalidStart is returned when no usable start cell was given.
	// The engine never picks a start on the caller's behalf.
	ErrInvalidStart = errors.New("bfs: invalid start cell")

	// ErrCorruptTopology is returned when a set connection bit resolves to
	// no cell, which means the pairing invariant of the grid was broken.
	ErrCorruptTopology = errors.New("bfs: connection leads off the grid")
)

// Hooks are the callbacks of one traversal. Each receives the context value
// passed to Traverse, so hook logic owns no hidden state of its own.
// A nil hook is a no-op.
type Hooks[T any] struct {
	// OnVisit is called when a cell is popped from the frontier.
	OnVisit func(ctx T, c grid.Index)

	// OnFinish is called after all connections of a cell were examined and
	// the cell was marked Processed.
	OnFinish func(ctx T, c grid.Index)

	// OnEdge is called for every connection from -> to, before to is
	// enqueued, regardless of to's State.
	OnEdge func(ctx T, from, to grid.Index)
}

// withDefaults replaces nil hooks with no-ops.
func (h Hooks[T]) withDefaults() Hooks[T] {
	if h.OnVisit == nil {
		h.OnVisit = func(T, grid.Index) {}
	}
	if h.OnFinish == nil {
		h.OnFinish = func(T, grid.Index) {}
	}
	if h.OnEdge == nil {
		h.OnEdge = func(T, grid.Index, grid.Index) {}
	}
	return h
}

// Result holds the outcome of a traversal:
//   - Order: cells in visit sequence.
//   - Last:  the cell finished last, one of the farthest from the start.
type Result struct {
	Order []grid.Index
	Last  grid.Index
}

// Tree is a traversal context that records the BFS tree: for each cell the
// cell it was first discovered from and its distance from the root.
type Tree struct {
	// Parent maps a cell to the cell it was first reached from; None for
	// the root and for unreached cells.
	Parent []grid.Index

	// Depth maps a cell to its distance (in connections) from the root.
	Depth []int

	// Last is the most recently finished cell.
	Last grid.Index

	g *grid.Grid
}

// NewTree allocates an empty tree sized for g.
func NewTree(g *grid.Grid) *Tree {
	t := &Tree{
		Parent: make([]grid.Index, g.Len()),
		Depth:  make([]int, g.Len()),
		Last:   grid.None,
		g:      g,
	}
	for i := range t.Parent {
		t.Parent[i] = grid.None
	}
	return t
}

// Grid returns the grid the tree was built for.
func (t *Tree) Grid() *grid.Grid {
	return t.g
}

// Discover records from as the back-pointer of to if to has not been reached
// yet in the current run. It reports whether a record was made.
func (t *Tree) Discover(from, to grid.Index) bool {
	if t.g.Cell(to).State != grid.Undiscovered {
		return false
	}
	t.Parent[to] = from
	t.Depth[to] = t.Depth[from] + 1
	return true
}

// Finish records c as the most recently finished cell.
func (t *Tree) Finish(c grid.Index) {
	t.Last = c
}

// TreeHooks returns hooks that fill a *Tree during a traversal.
func TreeHooks() Hooks[*Tree] {
	return Hooks[*Tree]{
		OnFinish: (*Tree).Finish,
		OnEdge: func(t *Tree, from, to grid.Index) {
			t.Discover(from, to)
		},
	}
}

// PathTo reconstructs the path from the root to dest by walking back-pointers
// and reversing the chain. The chain only holds first discoveries, so it is
// finite and acyclic.
func (t *Tree) PathTo(dest grid.Index) []grid.Index {
	if t.g.Cell(dest) == nil {
		return nil
	}
	// build reversed path
	path := []grid.Index{}
	for cur := dest; cur != grid.None; cur = t.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
