// Package grid defines the direction, vertical-delta, traversal-state and
// cell types shared by every maze package.
package grid

import (
	"fmt"
	"math/bits"
)

// Layers is the fixed number of stacked layers in every grid. Layer 0 holds
// the maze floor, layer 1 holds bridge overpasses.
const Layers = 2

// Directions is the number of planar directions a cell can connect in.
const Directions = 4

// Direction selects one of the four planar neighbours.
type Direction int

const (
	// Right steps +x.
	Right Direction = iota
	// Up steps -y.
	Up
	// Left steps -x.
	Left
	// Down steps +y.
	Down
)

// Opposite returns the direction pointing back, (d+2) mod 4.
func (d Direction) Opposite() Direction {
	return d.Turn(2)
}

// Turn rotates d by n quarter turns in the cyclic order Right, Up, Left, Down.
func (d Direction) Turn(n int) Direction {
	return Direction(((int(d)+n)%Directions + Directions) % Directions)
}

// Step returns the planar unit offset of d.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Valid reports whether d is one of the four planar directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Down
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Vertical is the layer delta taken when following a connection.
type Vertical int8

const (
	// Downward descends one layer.
	Downward Vertical = -1
	// Flat stays on the same layer.
	Flat Vertical = 0
	// Upward climbs one layer.
	Upward Vertical = 1
)

// Invert returns the delta of the paired half of a connection.
func (v Vertical) Invert() Vertical {
	return -v
}

func (v Vertical) String() string {
	switch v {
	case Downward:
		return "downward"
	case Flat:
		return "flat"
	case Upward:
		return "upward"
	}
	return fmt.Sprintf("Vertical(%d)", int8(v))
}

// State is the tri-state marker a traversal moves every reached cell through.
// It is reset at the start of each run and means nothing between runs.
type State uint8

const (
	// Undiscovered: not reached yet.
	Undiscovered State = iota
	// Discovered: queued on the frontier, not yet processed.
	Discovered
	// Processed: every connection of the cell has been examined.
	Processed
)

func (s State) String() string {
	switch s {
	case Undiscovered:
		return "undiscovered"
	case Discovered:
		return "discovered"
	case Processed:
		return "processed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Mask is a 4-bit set of connected directions, bit d for Direction d.
type Mask uint8

// Has reports whether direction d is connected.
func (m Mask) Has(d Direction) bool {
	return d.Valid() && m&(1<<uint(d)) != 0
}

// Set marks direction d connected.
func (m *Mask) Set(d Direction) {
	*m |= 1 << uint(d)
}

// Clear marks direction d disconnected.
func (m *Mask) Clear(d Direction) {
	*m &^= 1 << uint(d)
}

// Count returns the number of connected directions.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Index addresses a cell inside a Grid. It is only meaningful for the grid
// that produced it.
type Index int

// None is the Index of "no cell".
const None Index = -1

// Cell is one unit of the maze.
type Cell struct {
	X, Y, Z int

	// Open is true once the cell is part of the maze: it has a connection
	// or it is the generation seed.
	Open bool

	// Connections holds one bit per connected direction.
	Connections Mask

	// Vertical is the layer delta followed through each connected direction.
	Vertical [Directions]Vertical

	// State is the traversal marker of the most recent run.
	State State
}

// Connected reports whether the cell has a connection in direction d.
func (c *Cell) Connected(d Direction) bool {
	return c.Connections.Has(d)
}

// Degree returns the number of connections of the cell.
func (c *Cell) Degree() int {
	return c.Connections.Count()
}
