package astar

import (
	"math"

	"github.com/katalvlaran/gridastar/grid"
)

// cellState tracks where a coordinate sits in the search lifecycle.
type cellState uint8

const (
	stateUnvisited cellState = iota // never discovered
	stateOpen                       // discovered, awaiting expansion on the frontier
	stateClosed                     // expanded, cost-from-start final
)

// node is the per-coordinate bookkeeping record.
//
// The parent back-reference is a coordinate value resolved through the
// ledger at reconstruction time, never a pointer into another node, so
// records stay flat and relocation-safe inside the map.
type node struct {
	g         float64    // best known cost-from-start
	h         float64    // estimate to goal, computed once at first discovery
	parent    grid.Coord // predecessor on the best known route
	hasParent bool       // false only for the start node
	state     cellState
}

// ledger is the cost table of one run: coordinate → node record.
// Undiscovered coordinates implicitly carry g = +Inf.
type ledger struct {
	nodes map[grid.Coord]*node
}

func newLedger() *ledger {
	return &ledger{nodes: make(map[grid.Coord]*node)}
}

// g returns the best known cost-from-start, +Inf for undiscovered cells.
func (l *ledger) g(c grid.Coord) float64 {
	if n, ok := l.nodes[c]; ok {
		return n.g
	}
	return math.Inf(1)
}

// h returns the cached estimate of a discovered cell. The goal never moves
// within a run, so the value computed at first discovery stays valid.
func (l *ledger) h(c grid.Coord) float64 {
	return l.nodes[c].h
}

// state returns the lifecycle state, stateUnvisited for undiscovered cells.
func (l *ledger) state(c grid.Coord) cellState {
	if n, ok := l.nodes[c]; ok {
		return n.state
	}
	return stateUnvisited
}

// open records the first discovery of a coordinate: its cost-from-start,
// its estimate, and the predecessor it was reached from.
func (l *ledger) open(c grid.Coord, g, h float64, parent grid.Coord, hasParent bool) {
	l.nodes[c] = &node{g: g, h: h, parent: parent, hasParent: hasParent, state: stateOpen}
}

// relax lowers the cost-from-start of an open coordinate and reroutes its
// parent. The cached h is untouched.
func (l *ledger) relax(c grid.Coord, g float64, parent grid.Coord) {
	n := l.nodes[c]
	n.g = g
	n.parent = parent
	n.hasParent = true
}

// close finalizes a coordinate; its g never changes afterwards.
func (l *ledger) close(c grid.Coord) {
	l.nodes[c].state = stateClosed
}

// parent returns the recorded predecessor; ok=false for the start node and
// for undiscovered coordinates.
func (l *ledger) parent(c grid.Coord) (grid.Coord, bool) {
	n, found := l.nodes[c]
	if !found || !n.hasParent {
		return grid.Coord{}, false
	}
	return n.parent, true
}
