package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
)

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromStrings(rows)
	require.NoError(t, err)
	return g
}

// ---------------------------------------------------------------------------
// Neighbor generation: enumeration order, costs, corner rule, boundaries.
// ---------------------------------------------------------------------------

func TestNeighbors_CardinalOrderAndCost(t *testing.T) {
	g := mustGrid(t,
		"...",
		"...",
		"...",
	)
	c := grid.Coord{X: 1, Y: 1}

	want := []astar.Move{
		{To: grid.Coord{X: 1, Y: 0}, Cost: 1}, // N
		{To: grid.Coord{X: 2, Y: 1}, Cost: 1}, // E
		{To: grid.Coord{X: 1, Y: 2}, Cost: 1}, // S
		{To: grid.Coord{X: 0, Y: 1}, Cost: 1}, // W
	}
	require.Equal(t, want, astar.Neighbors(g, c, false))
}

func TestNeighbors_DiagonalOrderAndCost(t *testing.T) {
	g := mustGrid(t,
		"...",
		"...",
		"...",
	)
	c := grid.Coord{X: 1, Y: 1}

	want := []astar.Move{
		{To: grid.Coord{X: 1, Y: 0}, Cost: 1},
		{To: grid.Coord{X: 2, Y: 1}, Cost: 1},
		{To: grid.Coord{X: 1, Y: 2}, Cost: 1},
		{To: grid.Coord{X: 0, Y: 1}, Cost: 1},
		{To: grid.Coord{X: 2, Y: 0}, Cost: math.Sqrt2}, // NE
		{To: grid.Coord{X: 2, Y: 2}, Cost: math.Sqrt2}, // SE
		{To: grid.Coord{X: 0, Y: 2}, Cost: math.Sqrt2}, // SW
		{To: grid.Coord{X: 0, Y: 0}, Cost: math.Sqrt2}, // NW
	}
	require.Equal(t, want, astar.Neighbors(g, c, true))
}

func TestNeighbors_BlockedIntermediateVetoesDiagonal(t *testing.T) {
	// The wall north of center blocks N outright and vetoes both NE and NW,
	// even though their destination cells are open.
	g := mustGrid(t,
		".#.",
		"...",
		"...",
	)
	c := grid.Coord{X: 1, Y: 1}

	want := []astar.Move{
		{To: grid.Coord{X: 2, Y: 1}, Cost: 1},
		{To: grid.Coord{X: 1, Y: 2}, Cost: 1},
		{To: grid.Coord{X: 0, Y: 1}, Cost: 1},
		{To: grid.Coord{X: 2, Y: 2}, Cost: math.Sqrt2},
		{To: grid.Coord{X: 0, Y: 2}, Cost: math.Sqrt2},
	}
	require.Equal(t, want, astar.Neighbors(g, c, true))
}

func TestNeighbors_BothIntermediatesBlockedVetoesDiagonal(t *testing.T) {
	g := mustGrid(t,
		".#.",
		"#..",
		"...",
	)
	c := grid.Coord{X: 1, Y: 1}

	got := astar.Neighbors(g, c, true)
	for _, mv := range got {
		require.NotEqual(t, grid.Coord{X: 0, Y: 0}, mv.To,
			"NW reachable despite both intermediates blocked")
	}
}

func TestNeighbors_BlockedDestination(t *testing.T) {
	// Open intermediates do not legalize a blocked diagonal destination.
	g := mustGrid(t,
		"..",
		".#",
	)
	c := grid.Coord{X: 0, Y: 0}

	want := []astar.Move{
		{To: grid.Coord{X: 1, Y: 0}, Cost: 1},
		{To: grid.Coord{X: 0, Y: 1}, Cost: 1},
	}
	require.Equal(t, want, astar.Neighbors(g, c, true))
}

func TestNeighbors_MapEdgeActsAsWall(t *testing.T) {
	// From a corner the out-of-bounds ring removes two cardinals and three
	// diagonals; only E, S and SE remain.
	g := mustGrid(t,
		"..",
		"..",
	)
	c := grid.Coord{X: 0, Y: 0}

	want := []astar.Move{
		{To: grid.Coord{X: 1, Y: 0}, Cost: 1},
		{To: grid.Coord{X: 0, Y: 1}, Cost: 1},
		{To: grid.Coord{X: 1, Y: 1}, Cost: math.Sqrt2},
	}
	require.Equal(t, want, astar.Neighbors(g, c, true))
}

func TestNeighbors_FullyWalledIn(t *testing.T) {
	g := mustGrid(t,
		"###",
		"#.#",
		"###",
	)
	c := grid.Coord{X: 1, Y: 1}

	require.Empty(t, astar.Neighbors(g, c, true))
}
