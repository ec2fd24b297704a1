package planner

import "github.com/tetofonta/asd/grid"

// Solution is the outcome of one Solve call: the discovered path plus the
// counters spec.md §4.9 asks the engine to track for reproducibility
// checks.
type Solution struct {
	Path     []grid.Cell
	Weight   float64
	Time     int
	Waits    int
	Expanded int
	Opened   int
}
