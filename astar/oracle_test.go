package astar_test

import (
	"container/heap"
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/heuristic"
)

// ---------------------------------------------------------------------------
// Ground truth: a tiny lazy-deletion Dijkstra over the same move generator.
// No tie-break and no decrease-key; stale queue entries are skipped on pop,
// which is all a cost oracle needs.
// ---------------------------------------------------------------------------

type oracleItem struct {
	coord grid.Coord
	dist  float64
}

type oracleQueue []oracleItem

func (q oracleQueue) Len() int            { return len(q) }
func (q oracleQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q oracleQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *oracleQueue) Push(x interface{}) { *q = append(*q, x.(oracleItem)) }
func (q *oracleQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// dijkstraCost returns the true shortest-path cost between start and goal,
// ok=false when the goal is unreachable.
func dijkstraCost(g *grid.Grid, start, goal grid.Coord, diagonal bool) (float64, bool) {
	dist := map[grid.Coord]float64{start: 0}
	done := map[grid.Coord]bool{}
	q := &oracleQueue{{coord: start, dist: 0}}
	heap.Init(q)

	for q.Len() > 0 {
		item := heap.Pop(q).(oracleItem)
		if done[item.coord] {
			continue
		}
		done[item.coord] = true
		if item.coord == goal {
			return item.dist, true
		}
		for _, mv := range astar.Neighbors(g, item.coord, diagonal) {
			next := item.dist + mv.Cost
			if cur, seen := dist[mv.To]; !seen || next < cur {
				dist[mv.To] = next
				heap.Push(q, oracleItem{coord: mv.To, dist: next})
			}
		}
	}
	return 0, false
}

// randomGrid scatters walls at the given density, keeping start and goal
// open. Cell order is fixed so a seed reproduces the exact same world.
func randomGrid(t *testing.T, rng *rand.Rand, w, h int, density float64, start, goal grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				require.NoError(t, g.Block(grid.Coord{X: x, Y: y}))
			}
		}
	}
	require.NoError(t, g.Unblock(start))
	require.NoError(t, g.Unblock(goal))
	return g
}

// ---------------------------------------------------------------------------
// Optimality and completeness against the oracle.
// ---------------------------------------------------------------------------

func TestFindPath_CostMatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Estimators that never overstate the true distance for each movement
	// model. Manhattan overshoots diagonal worlds and is excluded there.
	admissible := map[bool][]heuristic.Kind{
		false: {heuristic.Manhattan, heuristic.Euclidean, heuristic.Chebyshev, heuristic.Octile},
		true:  {heuristic.Euclidean, heuristic.Chebyshev, heuristic.Octile},
	}

	for trial := 0; trial < 25; trial++ {
		w := 6 + rng.Intn(10)
		h := 6 + rng.Intn(8)
		start := grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		goal := grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		g := randomGrid(t, rng, w, h, 0.3, start, goal)

		for _, diagonal := range []bool{false, true} {
			wantCost, reachable := dijkstraCost(g, start, goal, diagonal)

			for _, k := range admissible[diagonal] {
				opts := []astar.Option{astar.WithHeuristic(k)}
				if diagonal {
					opts = append(opts, astar.WithDiagonal())
				}
				out, err := astar.FindPath(context.Background(), g, start, goal, opts...)
				require.NoError(t, err)
				require.Equal(t, reachable, out.Found,
					"trial %d diagonal=%v kind=%v: reachability disagrees with oracle", trial, diagonal, k)
				if !reachable {
					continue
				}
				require.InDelta(t, wantCost, out.Cost, 1e-9,
					"trial %d diagonal=%v kind=%v: suboptimal cost", trial, diagonal, k)
				sum := walkCost(t, g, out.Path, start, goal, diagonal)
				require.InDelta(t, out.Cost, sum, 1e-9,
					"trial %d diagonal=%v kind=%v: reported cost disagrees with the path", trial, diagonal, k)
			}
		}
	}
}

func TestFindPath_OverstatingEstimateStaysComplete(t *testing.T) {
	// Manhattan under diagonal movement trades optimality away, but the
	// search must still terminate, agree with the oracle on reachability,
	// and hand back a legal route.
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 10; trial++ {
		w := 6 + rng.Intn(8)
		h := 6 + rng.Intn(8)
		start := grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		goal := grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
		g := randomGrid(t, rng, w, h, 0.35, start, goal)

		wantCost, reachable := dijkstraCost(g, start, goal, true)
		out, err := astar.FindPath(context.Background(), g, start, goal,
			astar.WithDiagonal(), astar.WithHeuristic(heuristic.Manhattan))
		require.NoError(t, err)
		require.Equal(t, reachable, out.Found, "trial %d", trial)
		if !reachable {
			continue
		}
		sum := walkCost(t, g, out.Path, start, goal, true)
		require.InDelta(t, out.Cost, sum, 1e-9, "trial %d", trial)
		require.GreaterOrEqual(t, out.Cost+1e-9, wantCost,
			"trial %d: found a route cheaper than the true optimum", trial)
	}
}
