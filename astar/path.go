package astar

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// Path returns the start-to-goal coordinate sequence of a successful run.
// In any state other than Succeeded it returns ErrNotSucceeded; partial
// routes are never exposed.
//
// Each call rebuilds a fresh slice, so callers may keep or mutate the
// result freely.
func (s *Search) Path() ([]grid.Coord, error) {
	if s.state != Succeeded {
		return nil, fmt.Errorf("%w: state %s", ErrNotSucceeded, s.state)
	}
	return s.reconstruct(), nil
}

// reconstruct walks the ledger's parent chain goal-to-start, then reverses
// it in place. Every parent hop strictly lowers g, so the walk terminates
// at the start (the one coordinate without a parent) and cannot cycle.
// A start==goal run yields the one-element path.
func (s *Search) reconstruct() []grid.Coord {
	path := []grid.Coord{s.goal}
	cur := s.goal
	for {
		parent, ok := s.ledger.parent(cur)
		if !ok {
			break
		}
		path = append(path, parent)
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
