package astar

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/heuristic"
)

// Search is one resumable A* run over a read-only grid.
//
// A Search owns its entire working state (frontier, closed set, cost
// ledger), so several runs over the same grid coexist without sharing
// anything. The zero value is not usable; construct with New.
//
// Search is not safe for concurrent use. Drive it from one goroutine and
// interleave Step with Snapshot as needed; the only suspension point is the
// boundary between two Step calls.
type Search struct {
	grid  *grid.Grid
	start grid.Coord
	goal  grid.Coord
	opts  Options

	state    State
	ledger   *ledger
	frontier *frontier
	visited  visitedSet

	current    grid.Coord // most recently expanded coordinate
	hasCurrent bool       // false until the first expansion
	steps      int        // expansions performed
}

// New constructs a Search in the Ready state with the start node seeded on
// the frontier.
//
// Validation is fail-fast and ordered: nil grid (ErrNilGrid), undeclared
// heuristic kind (ErrBadHeuristic), then start and goal placement
// (ErrInvalidEndpoint, wrapped with which endpoint and why).
func New(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Heuristic.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadHeuristic, int(cfg.Heuristic))
	}
	if err := validateEndpoint(g, start, "start"); err != nil {
		return nil, err
	}
	if err := validateEndpoint(g, goal, "goal"); err != nil {
		return nil, err
	}

	s := &Search{
		grid:     g,
		start:    start,
		goal:     goal,
		opts:     cfg,
		state:    Ready,
		ledger:   newLedger(),
		frontier: newFrontier(),
		visited:  newVisitedSet(),
	}

	// Seed the start: g=0, no parent, straight onto the frontier.
	h0 := heuristic.Estimate(cfg.Heuristic, start, goal)
	s.ledger.open(start, 0, h0, grid.Coord{}, false)
	s.frontier.push(start, h0, h0)
	return s, nil
}

// validateEndpoint checks that an endpoint lies inside the grid on an open
// cell.
func validateEndpoint(g *grid.Grid, c grid.Coord, role string) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v is out of bounds", ErrInvalidEndpoint, role, c)
	}
	if g.Blocked(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidEndpoint, role, c)
	}
	return nil
}

// Step advances the run by exactly one node expansion and returns the state
// reached. Terminal states absorb further calls.
//
// One step: pop the minimum-(f, h) coordinate and close it, then either
// finish (goal reached, or nothing left to pop) or relax every legal move
// out of it. The work left intact between two calls is exactly the
// resumable state of the run.
func (s *Search) Step() State {
	if s.state.Terminal() {
		return s.state
	}
	s.state = Running

	current, ok := s.frontier.popMin()
	if !ok {
		// Frontier drained without reaching the goal: no path exists.
		s.state = Failed
		return s.state
	}

	s.ledger.close(current)
	s.visited.mark(current)
	s.current = current
	s.hasCurrent = true
	s.steps++

	if current == s.goal {
		s.state = Succeeded
		return s.state
	}

	s.expand(current)
	return s.state
}

// expand relaxes every legal move out of current: undiscovered destinations
// are opened, open ones with an improved cost-from-start are rerouted via
// decrease-key, closed ones are skipped (their cost is final under a
// consistent estimate).
func (s *Search) expand(current grid.Coord) {
	base := s.ledger.g(current)
	for _, mv := range Neighbors(s.grid, current, s.opts.Diagonal) {
		if s.visited.has(mv.To) {
			continue
		}
		tentative := base + mv.Cost
		switch s.ledger.state(mv.To) {
		case stateUnvisited:
			h := heuristic.Estimate(s.opts.Heuristic, mv.To, s.goal)
			s.ledger.open(mv.To, tentative, h, current, true)
			s.frontier.push(mv.To, tentative+h, h)
		case stateOpen:
			if tentative < s.ledger.g(mv.To) {
				h := s.ledger.h(mv.To)
				s.ledger.relax(mv.To, tentative, current)
				s.frontier.decreaseKey(mv.To, tentative+h, h)
			}
		}
	}
}

// RunToCompletion steps the search until it reaches a terminal state and
// returns the Outcome. A nil ctx is treated as context.Background().
//
// Cancellation is honored between expansions: on ctx.Done the run is left
// paused in Running (or Ready) with all working state intact, so a later
// RunToCompletion or Step resumes exactly where it stopped.
func (s *Search) RunToCompletion(ctx context.Context) (Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for !s.state.Terminal() {
		select {
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		default:
		}
		s.Step()
	}
	return s.Outcome()
}

// FindPath runs a whole search in one call: construct, run to completion,
// report. The convenience wrapper for callers that do not need stepping.
func FindPath(ctx context.Context, g *grid.Grid, start, goal grid.Coord, opts ...Option) (Outcome, error) {
	s, err := New(g, start, goal, opts...)
	if err != nil {
		return Outcome{}, err
	}
	return s.RunToCompletion(ctx)
}

// Outcome reports the terminal result. Before the run reaches Succeeded or
// Failed it returns ErrNotFinished.
func (s *Search) Outcome() (Outcome, error) {
	switch s.state {
	case Succeeded:
		return Outcome{
			Found:    true,
			Path:     s.reconstruct(),
			Cost:     s.ledger.g(s.goal),
			Expanded: s.steps,
		}, nil
	case Failed:
		return Outcome{Found: false, Expanded: s.steps}, nil
	default:
		return Outcome{}, fmt.Errorf("%w: state %s", ErrNotFinished, s.state)
	}
}

// Snapshot captures the observable state between steps: run phase, step
// count, the most recent expansion, and row-major sorted copies of the open
// and closed sets. Mutating the returned slices never touches the run.
func (s *Search) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Step:       s.steps,
		Current:    s.current,
		HasCurrent: s.hasCurrent,
		Frontier:   sortCoords(s.frontier.coords()),
		Visited:    sortCoords(s.visited.coords()),
	}
}

// sortCoords orders a coordinate dump row-major (y, then x) in place and
// returns it, so snapshots of identical runs compare equal element by
// element.
func sortCoords(cs []grid.Coord) []grid.Coord {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
	return cs
}

// State returns the current lifecycle phase.
func (s *Search) State() State { return s.state }

// Start returns the fixed start coordinate of this run.
func (s *Search) Start() grid.Coord { return s.start }

// Goal returns the fixed goal coordinate of this run.
func (s *Search) Goal() grid.Coord { return s.goal }

// Steps returns the number of expansions performed so far.
func (s *Search) Steps() int { return s.steps }
