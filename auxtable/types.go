package auxtable

import "github.com/tetofonta/asd/grid"

// Entry is one cell's precomputed distance-to-goal record.
type Entry struct {
	Cost    float64
	Next    grid.Cell
	HasNext bool // false exactly at the goal
}

// Table maps a cell to its Entry. Cells unreachable from the goal on the
// static grid are simply absent.
type Table map[grid.Cell]Entry
