// Package astar implements A* shortest-path search over 2-D occupancy grids
// as a resumable state machine.
//
// # What
//
// A Search is one run of the algorithm: grid, start, goal, and options are
// fixed at construction, and the run advances one node expansion at a time
// through Step. Between any two steps the run is paused, observable through
// Snapshot, and resumable; RunToCompletion merely loops Step with a
// cancellation check, and FindPath bundles construction and the loop into
// one call.
//
//	s, err := astar.New(g, start, goal, astar.WithDiagonal())
//	for !s.Step().Terminal() {
//	    render(s.Snapshot())
//	}
//	out, err := s.Outcome()
//
// # Model
//
// Movement is 4-directional by default; WithDiagonal enables the four
// diagonals at cost sqrt(2) with a strict corner rule (a diagonal step is
// legal only when both orthogonal intermediates are walkable). Heuristics
// come from package heuristic; Manhattan is the default and matches
// 4-directional movement, Octile matches diagonal movement. Estimates that
// overstate true distance (Euclidean under 4-directional movement is fine,
// Manhattan under diagonal movement is not) trade optimality for speed.
//
// Expansion order is fully deterministic: the frontier pops by lowest f,
// ties by lowest h, and neighbor enumeration follows a fixed direction
// order. Two identically configured runs produce identical step sequences,
// snapshots, and paths.
//
// # Lifecycle
//
//	Ready → Running → Succeeded | Failed
//
// Succeeded and Failed are absorbing: stepping a finished run returns the
// terminal state unchanged. Failure means the frontier drained without
// reaching the goal; it is reported as Outcome.Found=false, not as an
// error. Path and Cost are available only after Succeeded.
//
// # Complexity
//
// With V walkable cells and E legal moves: O((V+E) log V) time for a full
// run, O(V) memory for the ledger, frontier, and closed set. One Step costs
// O(log V) plus up to eight relaxations.
//
// # Errors
//
//   - ErrNilGrid: New received a nil grid.
//   - ErrBadHeuristic: options name an undeclared heuristic kind.
//   - ErrInvalidEndpoint: start or goal out of bounds or blocked.
//   - ErrNotFinished: Outcome requested before a terminal state.
//   - ErrNotSucceeded: Path requested outside Succeeded.
//
// Construction errors are wrapped with detail and match errors.Is.
package astar
