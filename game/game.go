// Package game implements the two-player duel played on a generated maze:
// one player starts at the solution's start, the other at its finish, and
// both draw paths through the maze until one reaches the other's trail.
//
// The package holds rules only. Input mapping and drawing live in the
// terminal frontend.
package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/amazing/grid"
)

// Players is the number of players in a duel.
const Players = 2

// ErrBadCell is returned by NewDuel when a starting cell does not exist.
var ErrBadCell = errors.New("game: starting cell not in grid")

// Duel is the state of one game. It is not safe for concurrent use.
type Duel struct {
	g     *grid.Grid
	paths [Players][]grid.Index
	won   bool
}

// NewDuel starts player 0 at start and player 1 at finish.
func NewDuel(g *grid.Grid, start, finish grid.Index) (*Duel, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrBadCell)
	}
	for _, i := range []grid.Index{start, finish} {
		if g.Cell(i) == nil {
			return nil, fmt.Errorf("%w: index %d", ErrBadCell, i)
		}
	}

	d := &Duel{g: g}
	d.paths[0] = []grid.Index{start}
	d.paths[1] = []grid.Index{finish}
	d.won = d.met()
	return d, nil
}

// Move advances player p through its head's connection in direction dir,
// following the connection's layer delta. Stepping back onto the previous
// cell of the path backtracks instead. It reports whether the path changed;
// moves without a connection, by unknown players or after the win do not.
func (d *Duel) Move(p int, dir grid.Direction) bool {
	if d.won || p < 0 || p >= Players {
		return false
	}
	path := d.paths[p]
	head := path[len(path)-1]
	c := d.g.Cell(head)
	if !c.Connected(dir) {
		return false
	}
	next := d.g.Neighbor(head, dir, c.Vertical[dir])
	if next == grid.None {
		return false
	}

	if len(path) > 1 && next == path[len(path)-2] {
		d.paths[p] = path[:len(path)-1]
	} else {
		d.paths[p] = append(path, next)
	}
	d.won = d.met()
	return true
}

// Backtrack removes the head of player p's path. The starting cell is never
// removed. It reports whether the path changed.
func (d *Duel) Backtrack(p int) bool {
	if d.won || p < 0 || p >= Players || len(d.paths[p]) < 2 {
		return false
	}
	d.paths[p] = d.paths[p][:len(d.paths[p])-1]
	return true
}

// Path returns a copy of player p's path, starting cell first.
func (d *Duel) Path(p int) []grid.Index {
	if p < 0 || p >= Players {
		return nil
	}
	out := make([]grid.Index, len(d.paths[p]))
	copy(out, d.paths[p])
	return out
}

// Head returns the current cell of player p, or grid.None.
func (d *Duel) Head(p int) grid.Index {
	if p < 0 || p >= Players {
		return grid.None
	}
	return d.paths[p][len(d.paths[p])-1]
}

// Won reports whether the players have met.
func (d *Duel) Won() bool {
	return d.won
}

// met reports whether either head lies on the other player's path.
func (d *Duel) met() bool {
	return contains(d.paths[0], d.Head(1)) || contains(d.paths[1], d.Head(0))
}

func contains(path []grid.Index, c grid.Index) bool {
	for _, i := range path {
		if i == c {
			return true
		}
	}
	return false
}
