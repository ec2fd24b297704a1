package generator

import (
	"container/heap"

	"github.com/tetofonta/asd/noise"
)

// noiseValue pairs a sampled Perlin value with its row-major cell index,
// grounded on original_source/instance_gen/noise_value.rs::NoiseValue.
type noiseValue struct {
	value uint32
	cell  int
}

// noiseHeap is a bounded max-heap: the largest of the K smallest values
// seen so far sits at the root, ready to be evicted the moment a smaller
// candidate shows up. Ties break toward the larger cell index, the same
// Ord derived by NoiseValue in the original.
type noiseHeap []noiseValue

func (h noiseHeap) Len() int { return len(h) }
func (h noiseHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value > h[j].value
	}
	return h[i].cell > h[j].cell
}
func (h noiseHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *noiseHeap) Push(x interface{}) {
	*h = append(*h, x.(noiseValue))
}
func (h *noiseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// selectQuantile scans the width x height field and returns (valLimit,
// cellLimit): the K-th smallest noise value and the row-major index it
// last settled at, the two thresholds grid.NewNoiseGrid needs to carve out
// exactly K obstacles (spec.md §4.10 step 1, §4.3's tie-break standardised
// on <=). k must be <= width*height.
func selectQuantile(field *noise.Field, width, height, k int) (uint32, int) {
	h := &noiseHeap{}
	heap.Init(h)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := noiseValue{value: field.NoiseU32(x, y), cell: y*width + x}
			if h.Len() < k {
				heap.Push(h, val)
			} else if (*h)[0].value > val.value {
				heap.Pop(h)
				heap.Push(h, val)
			}
		}
	}

	top := (*h)[0]
	return top.value, top.cell
}
