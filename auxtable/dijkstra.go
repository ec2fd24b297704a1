package auxtable

import (
	"container/heap"

	"github.com/tetofonta/asd/grid"
)

// Build runs Dijkstra from goal over g, ignoring agents, bounding
// expansion depth (hops from goal) at tmax. The returned Table maps each
// reached cell to its cost-to-goal and the neighbour to step to next when
// walking from that cell toward the goal.
func Build(g grid.Grid, goal grid.Cell, tmax int) Table {
	table := make(Table)
	visited := make(map[grid.Cell]bool)

	pq := make(nodePQ, 0, g.Nodes())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{cell: goal, hops: 0, dist: 0})
	table[goal] = Entry{Cost: 0, HasNext: false}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if visited[item.cell] {
			continue
		}
		visited[item.cell] = true

		if item.hops >= tmax {
			continue
		}

		for _, n := range grid.IterNeighbors(g, item.cell) {
			if n == item.cell {
				continue // the aux table only needs genuine moves, not waits
			}
			step := grid.Weight(item.cell, n)
			newDist := item.dist + step
			cur, ok := table[n]
			if ok && newDist >= cur.Cost {
				continue
			}
			table[n] = Entry{Cost: newDist, Next: item.cell, HasNext: true}
			heap.Push(&pq, &nodeItem{cell: n, hops: item.hops + 1, dist: newDist})
		}
	}

	return table
}

// nodeItem is one priority-queue entry: a cell reached at a given hop
// count and accumulated distance from the goal.
type nodeItem struct {
	cell grid.Cell
	hops int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, the same
// lazy-decrease-key pattern as katalvlaran-lvlath/dijkstra/dijkstra.go's
// nodePQ.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
