// Package grid models a rectangular 2D world as a bounds and obstacle
// oracle for grid search.
//
// What:
//
//   - Coord is the integer (x,y) value type every gridastar package keys by.
//   - Grid holds fixed dimensions plus a row-major obstacle bitmap; cells are
//     walkable unless blocked.
//   - FromStrings / String convert between Grids and ASCII maps
//     ('#' obstacle, '.' open), the dialect used across tests and demos.
//
// Why:
//
//   - A search kernel needs exactly two O(1) facts per cell, "inside the
//     world?" and "passable?", with no hidden state behind them.
//   - Keeping obstacles in a flat []bool (index y*width+x) makes queries
//     allocation-free and snapshots (Clone) a single copy.
//
// Concurrency:
//
//   - A Grid is not synchronized. Mutate it only between searches; any number
//     of searches may read one Grid concurrently as long as none mutate it.
//     Clone gives a run a private snapshot when the original must keep
//     changing.
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//   - ErrOutOfBounds: Block/Unblock outside the grid.
//   - ErrEmptyMap, ErrNonRectangular, ErrBadMapRune: FromStrings input faults.
package grid
