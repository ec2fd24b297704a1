package planner

import (
	"github.com/tetofonta/asd/agent"
	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/visited"
)

// verifyPath checks that walking path starting at time tStart is legal
// under mgr's reservation table and respects the horizon tmax, ending
// exactly at goal (spec.md §4.9.1). path is a *suffix*: path[0] is where
// the walker already stands at tStart, not a move into it.
func verifyPath(path []grid.Cell, tStart, tmax int, mgr *agent.Manager, goal grid.Cell) bool {
	if len(path) == 0 {
		return true
	}
	if len(path) == 1 {
		return path[0] == goal
	}
	if !mgr.CanStay(path[0], tStart) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if tStart+i > tmax {
			return false
		}
		if !mgr.IsTraversable(path[i-1], path[i], tStart+i-1) {
			return false
		}
	}
	last := path[len(path)-1]
	if last != goal {
		return false
	}
	return mgr.CanStay(goal, tStart+len(path)-1)
}

// reconstructFrom walks nodes[cell].parent(t) backwards from (cell, t),
// prepending as it goes, stopping when parent(t) is undefined (spec.md
// §4.9.2, generalised to an arbitrary starting (cell, time) so the aux
// shortcut can reuse it for the prefix half of a stitched path).
func reconstructFrom(ledger *visited.Ledger, cell grid.Cell, t int) (path []grid.Cell, weight float64, waits int) {
	c := cell
	for {
		path = append([]grid.Cell{c}, path...)
		p, ok := ledger.Parent(c, t)
		if !ok {
			break
		}
		if p == c {
			waits++
			weight += 1
			t--
		} else {
			weight += grid.Weight(c, p)
			c = p
			t--
		}
	}
	return path, weight, waits
}

// buildSuffix walks the aux table's predecessor-toward-goal chain starting
// just past start, returning the cells from the first step onward up to
// and including goal. It does not include start itself.
func buildSuffix(aux auxtable.Table, start grid.Cell) []grid.Cell {
	var suffix []grid.Cell
	node := start
	for {
		e, ok := aux[node]
		if !ok || !e.HasNext {
			break
		}
		suffix = append(suffix, e.Next)
		node = e.Next
	}
	return suffix
}
