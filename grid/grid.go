package grid

import "fmt"

// Grid is a fixed-size rectangular world of walkable and blocked cells.
// It answers only two questions, bounds and obstacle membership, and is the
// read-only oracle a search consults while running.
//
// Obstacles live in a row-major []bool bitmap (index y*width+x), so every
// query is O(1) with no per-cell allocation. The zero cell value is walkable.
//
// A Grid is mutable between searches (Block/Unblock) and must be treated as
// immutable while any search over it is in flight; use Clone to give a
// long-running search its own snapshot.
type Grid struct {
	width, height int
	blocked       []bool // row-major obstacle bitmap: index = y*width + x
}

// New constructs an open Grid of the given dimensions.
// Returns ErrBadDimensions unless both width and height are positive.
// Complexity: O(W×H) time and memory for the bitmap.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	return &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

// Width reports the number of columns.
func (g *Grid) Width() int { return g.width }

// Height reports the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps a coordinate to its row-major bitmap position: y*width + x.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Block marks c as an obstacle.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Block(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.blocked[g.index(c)] = true

	return nil
}

// Unblock clears the obstacle mark at c.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Unblock(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.blocked[g.index(c)] = false

	return nil
}

// Blocked reports whether c is impassable. Coordinates outside the grid
// report true: the world beyond the boundary is wall.
// Complexity: O(1).
func (g *Grid) Blocked(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.blocked[g.index(c)]
}

// Walkable reports whether c is inside the grid and free of obstacles.
// Complexity: O(1).
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

// Clone returns a deep copy sharing no storage with the receiver.
// Use it to hand a search its own immutable snapshot while the original
// keeps receiving obstacle edits.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		width:   g.width,
		height:  g.height,
		blocked: make([]bool, len(g.blocked)),
	}
	copy(dup.blocked, g.blocked)

	return dup
}
