// Package astar defines the run states, sentinel errors, configuration
// options, and result types for the resumable A* search kernel.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/heuristic"
)

// Sentinel errors for search construction and result access.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New or FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadHeuristic indicates an undeclared heuristic kind in the options.
	ErrBadHeuristic = errors.New("astar: unknown heuristic kind")

	// ErrInvalidEndpoint indicates a start or goal outside the grid or on a
	// blocked cell. Construction fails before any stepping begins.
	ErrInvalidEndpoint = errors.New("astar: invalid start or goal")

	// ErrNotFinished indicates Outcome was requested before the search
	// reached a terminal state.
	ErrNotFinished = errors.New("astar: search has not reached a terminal state")

	// ErrNotSucceeded indicates Path was requested outside the Succeeded
	// state. Calling it early is a programmer error, not a search failure.
	ErrNotSucceeded = errors.New("astar: no path available before the search succeeds")
)

// State is the lifecycle phase of a Search.
//
//	Ready → Running → Succeeded | Failed
//
// Ready and Running accept further Step calls; Succeeded and Failed are
// terminal and absorbing (stepping a finished search changes nothing).
type State int

const (
	// Ready: constructed and seeded with the start node, no expansion yet.
	Ready State = iota

	// Running: at least one expansion done, outcome still undecided.
	Running

	// Succeeded: the goal was expanded; path and total cost are available.
	Succeeded

	// Failed: the frontier drained without reaching the goal; no path exists.
	Failed
)

// String returns the lowercase state name, or "unknown".
func (st State) String() string {
	switch st {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether st absorbs further steps.
func (st State) Terminal() bool {
	return st == Succeeded || st == Failed
}

// Options holds the per-run configuration fixed at construction.
//
// The frontier tie-break rule (f ascending, then h ascending) is part of the
// kernel contract and deliberately not configurable: a floating tie-break
// would make expansion order, and therefore every observable trace,
// irreproducible.
type Options struct {
	// Heuristic selects the estimator guiding expansion order.
	// Default: heuristic.Manhattan.
	Heuristic heuristic.Kind

	// Diagonal enables 8-directional movement; diagonal steps cost exactly
	// sqrt(2) and never cut obstacle corners. Default: false (4-directional).
	Diagonal bool
}

// Option configures a Search via functional arguments to New.
type Option func(*Options)

// DefaultOptions returns the construction defaults: Manhattan estimate,
// 4-directional movement.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Manhattan,
		Diagonal:  false,
	}
}

// WithHeuristic selects the estimator for this run. New validates the kind
// and surfaces ErrBadHeuristic for undeclared values.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) { o.Heuristic = k }
}

// WithDiagonal enables 8-directional movement for this run.
func WithDiagonal() Option {
	return func(o *Options) { o.Diagonal = true }
}

// Move is one legal step out of a cell: the destination coordinate and the
// cost of entering it (1 for cardinal steps, sqrt(2) for diagonal ones).
type Move struct {
	To   grid.Coord
	Cost float64
}

// Outcome is the terminal result of a run.
//
// "No path exists" is a routine outcome, not an error: it arrives as
// Found=false with a nil Path, never through the error channel.
type Outcome struct {
	// Found reports whether a path exists.
	Found bool

	// Path is the start-to-goal coordinate sequence; nil when !Found.
	// A start==goal run yields the one-element path.
	Path []grid.Coord

	// Cost is the total path cost (the final cost-from-start of the goal);
	// 0 when !Found.
	Cost float64

	// Expanded counts node expansions performed before termination.
	Expanded int
}

// Snapshot is the read-only observation surface exposed between steps, made
// for collaborators such as renderers that sample search progress without
// touching the algorithm.
//
// Frontier and Visited are fresh slices sorted row-major (y, then x), so two
// identically configured runs produce byte-identical snapshot sequences.
type Snapshot struct {
	// State at the moment of the snapshot.
	State State

	// Step counts expansions completed so far.
	Step int

	// Current is the most recently expanded coordinate; meaningful only
	// when HasCurrent is true (false until the first expansion).
	Current    grid.Coord
	HasCurrent bool

	// Frontier holds the discovered-but-open coordinates.
	Frontier []grid.Coord

	// Visited holds the finalized (closed) coordinates.
	Visited []grid.Coord
}
