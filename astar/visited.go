package astar

import "github.com/katalvlaran/gridastar/grid"

// visitedSet is the closed set of one run. Membership only ever grows: a
// coordinate enters when it is expanded and never leaves, which is what
// makes closed costs final under a consistent estimate.
type visitedSet map[grid.Coord]struct{}

func newVisitedSet() visitedSet {
	return make(visitedSet)
}

// mark finalizes a coordinate.
func (v visitedSet) mark(c grid.Coord) {
	v[c] = struct{}{}
}

// has reports whether c is closed.
func (v visitedSet) has(c grid.Coord) bool {
	_, ok := v[c]
	return ok
}

// coords dumps the closed coordinates in map order; snapshot consumers sort
// the copy row-major before exposing it.
func (v visitedSet) coords() []grid.Coord {
	out := make([]grid.Coord, 0, len(v))
	for c := range v {
		out = append(out, c)
	}
	return out
}
