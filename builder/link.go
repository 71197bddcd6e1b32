// SPDX-License-Identifier: MIT
// Package: amazing/builder
//
// link.go: paired connection primitives.

package builder

import (
	"github.com/katalvlaran/amazing/grid"
)

// Link connects from to the cell one step away in direction d with layer
// delta v, writing both halves of the connection: from gets (d, v), the
// neighbour gets (d.Opposite(), -v). Both cells are marked open.
//
// Returns the neighbour's Index, or
//   - ErrGridNil if g is nil;
//   - ErrNoNeighbor if from is invalid or the step leaves the grid;
//   - ErrAlreadyConnected if either half already exists.
//
// Complexity: O(1).
func Link(g *grid.Grid, from grid.Index, d grid.Direction, v grid.Vertical) (grid.Index, error) {
	if g == nil {
		return grid.None, builderErrorf(MethodLink, ErrGridNil, "link from %d", from)
	}
	to := g.Neighbor(from, d, v)
	if to == grid.None {
		return grid.None, builderErrorf(MethodLink, ErrNoNeighbor,
			"cell %d direction %s vertical %s", from, d, v)
	}

	a, b := g.Cell(from), g.Cell(to)
	back := d.Opposite()
	if a.Connected(d) || b.Connected(back) {
		return grid.None, builderErrorf(MethodLink, ErrAlreadyConnected,
			"(%d,%d,%d) %s", a.X, a.Y, a.Z, d)
	}

	a.Connections.Set(d)
	a.Vertical[d] = v
	a.Open = true

	b.Connections.Set(back)
	b.Vertical[back] = v.Invert()
	b.Open = true

	return to, nil
}

// Unlink removes the connection of from in direction d together with its
// pair on the other end. Open flags are left untouched: a cell that was part
// of the maze stays part of it.
//
// Returns the former neighbour's Index, or
//   - ErrGridNil if g is nil;
//   - ErrNotConnected if from has no connection in direction d;
//   - ErrNoNeighbor if the stored connection resolves to no cell.
//
// Complexity: O(1).
func Unlink(g *grid.Grid, from grid.Index, d grid.Direction) (grid.Index, error) {
	if g == nil {
		return grid.None, builderErrorf(MethodUnlink, ErrGridNil, "unlink from %d", from)
	}
	a := g.Cell(from)
	if a == nil || !a.Connected(d) {
		return grid.None, builderErrorf(MethodUnlink, ErrNotConnected, "cell %d direction %s", from, d)
	}
	to := g.Neighbor(from, d, a.Vertical[d])
	if to == grid.None {
		return grid.None, builderErrorf(MethodUnlink, ErrNoNeighbor,
			"(%d,%d,%d) %s", a.X, a.Y, a.Z, d)
	}

	b := g.Cell(to)
	back := d.Opposite()
	a.Connections.Clear(d)
	a.Vertical[d] = grid.Flat
	b.Connections.Clear(back)
	b.Vertical[back] = grid.Flat

	return to, nil
}
