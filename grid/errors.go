package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no columns or no rows was requested.
	ErrEmptyGrid = errors.New("grid: width and height must be at least 1")
	// ErrBadViewport indicates a viewport that cannot be split into whole tiles.
	ErrBadViewport = errors.New("grid: pixel and cell size must be positive")
)
