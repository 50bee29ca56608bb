package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridastar/grid"
)

// BenchmarkWalkable measures the per-query cost of the hot oracle call
// on a 1000x1000 grid with ~30% random obstacles.
func BenchmarkWalkable(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Float64() < 0.3 {
				_ = g.Block(grid.Coord{X: x, Y: y})
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := grid.Coord{X: i % n, Y: (i / n) % n}
		_ = g.Walkable(c)
	}
}

// BenchmarkClone measures snapshot cost for a 1000x1000 grid.
func BenchmarkClone(b *testing.B) {
	const n = 1000
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
