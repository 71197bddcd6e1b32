// SPDX-License-Identifier: MIT
// Package: amazing/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with builderErrorf and %w.
//   • Generation never panics; validation panics are confined to option
//     constructors (WithRand(nil), WithOnLink(nil)).

package builder

import (
	"errors"
	"fmt"
)

// ErrGridNil indicates a nil *grid.Grid was passed.
var ErrGridNil = errors.New("builder: grid is nil")

// ErrInvalidProbability indicates that a branch, loop or bridge chance lies
// outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that Generate was called without a random
// source (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOriginOutOfBounds indicates that WithOrigin named a cell outside layer 0.
var ErrOriginOutOfBounds = errors.New("builder: origin outside the grid")

// ErrNoNeighbor indicates that Link was asked to connect towards a cell that
// does not exist.
var ErrNoNeighbor = errors.New("builder: no neighbour in that direction")

// ErrAlreadyConnected indicates that Link would overwrite an existing half of
// a connection, which would orphan its pair.
var ErrAlreadyConnected = errors.New("builder: cell is already connected in that direction")

// ErrNotConnected indicates that Unlink was asked to remove a connection that
// is not there.
var ErrNotConnected = errors.New("builder: cell is not connected in that direction")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
