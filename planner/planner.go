package planner

import (
	"container/heap"

	"github.com/tetofonta/asd/agent"
	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/visited"
)

// Solve runs the time-expanded A* search from init to goal over g, subject
// to mgr's reservation table, up to horizon tmax (spec.md §4.9). greedy
// selects the termination rule: true stops at the first pop of goal, false
// drains the open list looking for a cheaper path that arrives later via
// waits. aux, if non-nil, is consulted as an early-exit shortcut — and,
// per the resolved Open Question in DESIGN.md, is only attempted in greedy
// mode, since continuing to drain the open list under non-greedy mode
// might still find something cheaper than the shortcut offers.
func Solve(g grid.Grid, mgr *agent.Manager, init, goal grid.Cell, tmax int, greedy bool, aux auxtable.Table) (*Solution, error) {
	ledger := visited.NewLedger(mgr)
	ledger.Set(init, 0, 0, grid.Cell{}, false)

	oh := &openHeap{}
	heap.Init(oh)
	openMember := make(map[nodeKey]bool)

	push := func(cell grid.Cell, t int, cost float64) {
		f := float64(grid.Heuristic(cell, goal)) + cost
		heap.Push(oh, &openNode{f: f, cell: cell, time: t})
		openMember[nodeKey{cell, t}] = true
	}

	push(init, 0, 0) // f = h(init,goal), not spec.md §4.9's f=0; init pops first regardless since nothing else is open yet
	opened := 1
	expanded := 0
	closed := make(map[nodeKey]bool)

	goalFound := false

	for oh.Len() > 0 {
		item := heap.Pop(oh).(*openNode)
		key := nodeKey{item.cell, item.time}
		delete(openMember, key)
		expanded++
		closed[key] = true

		srcCost := ledger.Weight(item.cell, item.time)

		if item.cell == goal {
			if greedy {
				goalFound = true
				break
			}
			continue
		}

		if aux != nil && greedy {
			entry, ok := aux[item.cell]
			if !ok {
				return nil, ErrInfeasibleInstance
			}

			suffix := buildSuffix(aux, item.cell)
			if verifyPath(suffix, item.time+1, tmax, mgr, goal) {
				prefix, prefixWeight, prefixWaits := reconstructFrom(ledger, item.cell, item.time)
				full := append(append([]grid.Cell{}, prefix...), suffix...)
				totalWeight := prefixWeight + entry.Cost

				if !verifyPath(full, 0, tmax, mgr, goal) {
					return nil, ErrPathVerificationFailed
				}

				return &Solution{
					Path:     full,
					Weight:   totalWeight,
					Time:     len(full) - 1,
					Waits:    prefixWaits,
					Expanded: expanded,
					Opened:   opened,
				}, nil
			}
		}

		if item.time >= tmax {
			continue
		}

		for _, n := range grid.IterNeighbors(g, item.cell) {
			if !mgr.IsTraversable(item.cell, n, item.time) {
				continue
			}

			step := grid.Weight(item.cell, n)
			dstCost := ledger.Weight(n, item.time+1)
			nk := nodeKey{n, item.time + 1}

			if closed[nk] && srcCost+step >= dstCost {
				continue
			}

			if srcCost+step < dstCost {
				ledger.Set(n, item.time+1, srcCost+step, item.cell, true)
				dstCost = srcCost + step
			}

			if !openMember[nk] {
				push(n, item.time+1, ledger.Weight(n, item.time+1))
				opened++
			}
		}
	}

	if !goalFound && !ledger.Has(goal) {
		return nil, ErrInfeasibleInstance
	}

	bestTime, _, ok := ledger.Best(goal)
	if !ok {
		return nil, ErrInfeasibleInstance
	}

	path, weight, waits := reconstructFrom(ledger, goal, bestTime)
	if !verifyPath(path, 0, tmax, mgr, goal) {
		return nil, ErrPathVerificationFailed
	}

	return &Solution{
		Path:     path,
		Weight:   weight,
		Time:     len(path) - 1,
		Waits:    waits,
		Expanded: expanded,
		Opened:   opened,
	}, nil
}
