package astar

import (
	"math"

	"github.com/katalvlaran/gridastar/grid"
)

// cardinalCost is the cost of a horizontal or vertical step; diagonal steps
// cost math.Sqrt2.
const cardinalCost = 1.0

// Direction tables. Enumeration order is part of the kernel contract:
// cardinals first (N, E, S, W), then diagonals (NE, SE, SW, NW). A fixed
// order means equal-cost relaxations always happen in the same sequence,
// which keeps expansion traces reproducible across runs.
var (
	cardinalDirs = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalDirs = [4][2]int{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// Neighbors generates the legal moves out of c on g.
//
// Cardinal moves require only a walkable destination. Diagonal moves (when
// enabled) additionally require both orthogonal intermediates to be
// walkable: stepping from (x,y) to (x+1,y+1) is rejected unless (x+1,y) and
// (x,y+1) are both open, so a route can never clip through the corner of an
// obstacle. Out-of-bounds destinations and intermediates count as blocked.
func Neighbors(g *grid.Grid, c grid.Coord, diagonal bool) []Move {
	moves := make([]Move, 0, 8)
	for _, d := range cardinalDirs {
		to := c.Offset(d[0], d[1])
		if g.Walkable(to) {
			moves = append(moves, Move{To: to, Cost: cardinalCost})
		}
	}
	if !diagonal {
		return moves
	}
	for _, d := range diagonalDirs {
		to := c.Offset(d[0], d[1])
		if !g.Walkable(to) {
			continue
		}
		// Corner rule: both cells adjacent to the diagonal must be open.
		if !g.Walkable(c.Offset(d[0], 0)) || !g.Walkable(c.Offset(0, d[1])) {
			continue
		}
		moves = append(moves, Move{To: to, Cost: math.Sqrt2})
	}
	return moves
}
