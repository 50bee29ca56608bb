package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridastar/grid"
)

// frontierItem is one open coordinate with its ordering keys and its current
// heap slot. The slot index is maintained by frontierHeap.Swap so decrease-key
// can reach the item in O(log n) without a linear scan.
type frontierItem struct {
	coord grid.Coord
	f     float64 // g + h, the primary ordering key
	h     float64 // cached estimate, the tie-break key
	index int     // position in the heap slice; -1 once popped
}

// frontierHeap implements heap.Interface over frontier items, ordered by
// f ascending with ties broken by h ascending (prefer the node nearer the
// goal). Both keys are fixed by the kernel contract.
type frontierHeap []*frontierItem

func (fh frontierHeap) Len() int { return len(fh) }

func (fh frontierHeap) Less(i, j int) bool {
	if fh[i].f != fh[j].f {
		return fh[i].f < fh[j].f
	}
	return fh[i].h < fh[j].h
}

func (fh frontierHeap) Swap(i, j int) {
	fh[i], fh[j] = fh[j], fh[i]
	fh[i].index = i
	fh[j].index = j
}

func (fh *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*fh)
	*fh = append(*fh, item)
}

func (fh *frontierHeap) Pop() interface{} {
	old := *fh
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the slot for GC
	item.index = -1
	*fh = old[:n-1]
	return item
}

// frontier is the open set: a binary min-heap paired with a coordinate index
// giving O(1) membership tests and O(log n) true decrease-key. A coordinate
// appears at most once; cost improvements rewrite the live item in place
// instead of pushing stale duplicates.
type frontier struct {
	heap    frontierHeap
	byCoord map[grid.Coord]*frontierItem
}

func newFrontier() *frontier {
	fr := &frontier{
		heap:    make(frontierHeap, 0),
		byCoord: make(map[grid.Coord]*frontierItem),
	}
	heap.Init(&fr.heap)
	return fr
}

// len reports the number of open coordinates.
func (fr *frontier) len() int { return len(fr.heap) }

// contains reports whether c is currently open.
func (fr *frontier) contains(c grid.Coord) bool {
	_, ok := fr.byCoord[c]
	return ok
}

// push inserts a newly discovered coordinate. The caller guarantees c is not
// already present.
func (fr *frontier) push(c grid.Coord, f, h float64) {
	item := &frontierItem{coord: c, f: f, h: h}
	heap.Push(&fr.heap, item)
	fr.byCoord[c] = item
}

// popMin removes and returns the coordinate with the smallest (f, h) pair.
// ok=false when the frontier is empty.
func (fr *frontier) popMin() (grid.Coord, bool) {
	if len(fr.heap) == 0 {
		return grid.Coord{}, false
	}
	item := heap.Pop(&fr.heap).(*frontierItem)
	delete(fr.byCoord, item.coord)
	return item.coord, true
}

// decreaseKey lowers the keys of an open coordinate and restores heap order
// through the stored slot index. The caller guarantees c is present.
func (fr *frontier) decreaseKey(c grid.Coord, f, h float64) {
	item := fr.byCoord[c]
	item.f = f
	item.h = h
	heap.Fix(&fr.heap, item.index)
}

// coords dumps the open coordinates in internal heap order; snapshot
// consumers sort the copy row-major before exposing it.
func (fr *frontier) coords() []grid.Coord {
	out := make([]grid.Coord, 0, len(fr.heap))
	for _, item := range fr.heap {
		out = append(out, item.coord)
	}
	return out
}
