package grid

// Components partitions every free cell of g into maximal 8-connected
// groups, adapted from gridgraph.ConnectedComponents' land/water BFS (the
// teacher's island-detection scan, here run once over Blocked instead of a
// value threshold). The result is ordered by first-visit in row-major scan
// order, and each component's cells are ordered by BFS discovery.
//
// A path search over time can only ever succeed between two cells that
// share a component in the static (time-0) grid; the reverse isn't
// guaranteed, since waits and time-varying agent reservations never connect
// cells the grid itself keeps apart.
func Components(g Grid) [][]Cell {
	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	var comps [][]Cell

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || g.Blocked(x, y) {
				continue
			}

			queue := []Cell{{X: x, Y: y}}
			visited[idx] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				comp = append(comp, cur)

				for _, n := range IterNeighbors(g, cur) {
					if n == cur {
						continue // the wait move, not a spatial edge
					}
					nIdx := n.Y*w + n.X
					if visited[nIdx] {
						continue
					}
					visited[nIdx] = true
					queue = append(queue, n)
				}
			}

			comps = append(comps, comp)
		}
	}

	return comps
}

// SameComponent reports whether a and b fall in the same 8-connected free
// region of g, i.e. whether a time-unconstrained search could ever join
// them. Both cells must be free; a blocked cell belongs to no component.
func SameComponent(g Grid, a, b Cell) bool {
	if g.Blocked(a.X, a.Y) || g.Blocked(b.X, b.Y) {
		return false
	}
	label := make(map[Cell]int)
	for i, comp := range Components(g) {
		for _, c := range comp {
			label[c] = i
		}
	}
	la, aok := label[a]
	lb, bok := label[b]
	return aok && bok && la == lb
}
