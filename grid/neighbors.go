package grid

// IterNeighbors returns the up-to-9 cells in the 3x3 window centred on c,
// including c itself (the "wait" move), in fixed row-major order from
// (x-1,y-1) to (x+1,y+1). Cells outside the grid or blocked are omitted.
// This order is observable: it drives A* tie-breaking (spec.md §3, §8.5).
func IterNeighbors(g Grid, c Cell) []Cell {
	out := make([]Cell, 0, 9)
	for y := c.Y - 1; y <= c.Y+1; y++ {
		for x := c.X - 1; x <= c.X+1; x++ {
			if x < 0 || y < 0 || !g.Exists(x, y) {
				continue
			}
			if g.Blocked(x, y) {
				continue
			}
			out = append(out, Cell{x, y})
		}
	}
	return out
}
