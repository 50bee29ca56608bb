// Package heuristic defines the closed set of distance estimators used to
// guide grid search, keyed by the Kind enum.
package heuristic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/grid"
)

// ErrUnknownKind is returned by Parse (and carried by the Estimate panic)
// when a value names no declared heuristic.
var ErrUnknownKind = errors.New("heuristic: unknown heuristic kind")

// Kind selects one of the four supported estimators. The set is closed on
// purpose: a fixed enum keeps dispatch exhaustive and search configuration
// serializable, where an open function type would not.
type Kind int

const (
	// Manhattan is |dx|+|dy|: admissible for 4-directional movement only.
	// The package default (zero value).
	Manhattan Kind = iota

	// Euclidean is sqrt(dx^2+dy^2): admissible for any movement model and
	// never above Manhattan, so it is the safe-but-less-informed choice.
	Euclidean

	// Chebyshev is max(|dx|,|dy|): admissible for 8-directional movement
	// when diagonal steps cost 1.
	Chebyshev

	// Octile is max+(sqrt(2)-1)*min over (|dx|,|dy|): the tight admissible
	// bound when diagonal steps cost exactly sqrt(2).
	Octile
)

// names doubles as the Parse table and the String table.
var names = map[Kind]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Chebyshev: "chebyshev",
	Octile:    "octile",
}

// String returns the lowercase name used in configuration, or "unknown".
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}

	return "unknown"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := names[k]

	return ok
}

// Kinds lists all declared kinds in declaration order, for exhaustive tests
// and configuration menus.
func Kinds() []Kind {
	return []Kind{Manhattan, Euclidean, Chebyshev, Octile}
}

// Parse maps a lowercase kind name back to its Kind.
// Returns ErrUnknownKind (wrapped with the input) for anything else.
func Parse(s string) (Kind, error) {
	for _, k := range Kinds() {
		if names[k] == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Estimate returns the k-estimate of remaining cost from a to b.
// It is pure and deterministic: no grid access, no state, and a non-negative
// result for every coordinate pair.
//
// Estimate panics if k is not a declared Kind; search construction validates
// the kind first, so a panic here always marks a programmer error.
// Complexity: O(1).
func Estimate(k Kind, a, b grid.Coord) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	switch k {
	case Manhattan:
		return float64(dx + dy)
	case Euclidean:
		return math.Hypot(float64(dx), float64(dy))
	case Chebyshev:
		if dx > dy {
			return float64(dx)
		}

		return float64(dy)
	case Octile:
		lo, hi := dx, dy
		if lo > hi {
			lo, hi = hi, lo
		}

		return float64(hi) + (math.Sqrt2-1)*float64(lo)
	default:
		panic(ErrUnknownKind.Error())
	}
}
