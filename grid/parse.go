package grid

import (
	"fmt"
	"strings"
)

// ASCII map dialect shared by FromStrings and String.
const (
	runeBlocked = '#'
	runeOpen    = '.'
)

// FromStrings builds a Grid from an ASCII map, one string per row, top row
// first: '#' marks an obstacle, '.' an open cell.
//
// Returns ErrEmptyMap if rows is empty or the first row has no columns,
// ErrNonRectangular if any row length differs from the first, and
// ErrBadMapRune (wrapped with the offending rune and position) for anything
// outside the dialect.
// Complexity: O(W×H).
func FromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	height := len(rows)
	width := len([]rune(rows[0]))
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(cells), width)
		}
		for x, r := range cells {
			switch r {
			case runeBlocked:
				g.blocked[y*width+x] = true
			case runeOpen:
				// walkable is the zero value
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadMapRune, r, x, y)
			}
		}
	}

	return g, nil
}

// String renders the grid back in the FromStrings dialect, rows joined by
// newlines with no trailing newline. Round-trips with FromStrings.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.blocked[y*g.width+x] {
				b.WriteRune(runeBlocked)
			} else {
				b.WriteRune(runeOpen)
			}
		}
	}

	return b.String()
}
