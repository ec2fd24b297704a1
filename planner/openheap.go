package planner

import "github.com/tetofonta/asd/grid"

// nodeKey identifies one open-list / closed-set slot.
type nodeKey struct {
	cell grid.Cell
	time int
}

// openNode is one priority-queue entry: a candidate (cell, time) with its
// f-score at the time it was pushed.
type openNode struct {
	f    float64
	cell grid.Cell
	time int
}

// openHeap is a min-heap of *openNode ordered by f ascending, ties broken
// toward the smaller time; no further tie-break on strict equality of both
// (spec.md §3 "Open-list node"). Duplicates are allowed by design — the
// engine dedups at pop time via closed (spec.md §4.7).
type openHeap []*openNode

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].time < h[j].time
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x interface{}) {
	*h = append(*h, x.(*openNode))
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
