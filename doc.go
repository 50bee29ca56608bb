// Package gridastar is an embeddable A* toolkit for rectangular occupancy
// grids, built around one idea: a search is a resumable run that advances
// one observable expansion at a time, on your schedule.
//
// 🚀 What is gridastar?
//
//	A small library that brings together:
//		• World modeling: bounds + obstacle bitmap, '#'/'.' text maps
//		• Estimators: Manhattan, Euclidean, Chebyshev, Octile
//		• A resumable kernel: one expansion per Step, absorbing terminals
//		• True decrease-key frontier with a fixed (f, h) tie-break
//		• Snapshots: sorted open/closed dumps for renderers and debuggers
//		• Corner-safe diagonal movement at cost √2
//
// ✨ Why choose gridastar?
//
//   - Deterministic – fixed tie-break and neighbor order; identical runs
//     produce identical step traces, snapshots, and paths
//   - Steppable – pause after any expansion and resume later, with a
//     context-aware RunToCompletion for the impatient
//   - Honest failures – "no path" is an Outcome, never an error
//   - Pure Go kernel – no goroutines inside, nothing shared between runs
//
// Everything is organized under three subpackages:
//
//	grid/      — Coord, the obstacle bitmap, FromStrings/String map codec
//	heuristic/ — the four distance estimators behind one Estimate call
//	astar/     — New, Step, RunToCompletion, FindPath, Snapshot, Path
//
// Quick ASCII example:
//
//	input:              solved (r = route):
//
//	    S.#.                S r # .
//	    ..#.                . r # .
//	    #..G                # r r G
//
// Runnable demos live in examples/: a one-shot maze solve and a terminal
// animation that replays a run expansion by expansion.
//
//	go get github.com/katalvlaran/gridastar
package gridastar
