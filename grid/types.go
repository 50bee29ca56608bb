// Package grid defines the Coord value type and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridastar.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrEmptyMap indicates an ASCII map with no rows or no columns.
	ErrEmptyMap = errors.New("grid: map must have at least one row and one column")

	// ErrNonRectangular indicates ASCII map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all map rows must have the same length")

	// ErrBadMapRune indicates an ASCII map rune outside the {'#', '.'} dialect.
	ErrBadMapRune = errors.New("grid: unrecognized map rune")
)

// Coord identifies a single cell by its integer column (X) and row (Y).
// It is a plain value type: comparable, copyable, and usable as a map key.
// All gridastar packages key their per-cell bookkeeping by Coord rather than
// by node pointers, so no cyclic ownership can arise through search state.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offset returns the coordinate displaced by (dx, dy).
func (c Coord) Offset(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
