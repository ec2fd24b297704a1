package grid

// Cell is an integer grid coordinate. Equality and use as a map key are
// structural.
type Cell struct {
	X, Y int
}

// Grid is the dispatch surface shared by NoiseGrid and CustomGrid: bounds,
// an obstacle predicate, and a stable published free-cell count.
type Grid interface {
	// Width returns the grid width.
	Width() int
	// Height returns the grid height.
	Height() int
	// Exists reports whether (x,y) lies within the grid bounds.
	Exists(x, y int) bool
	// Blocked reports whether (x,y) is an obstacle. Undefined for
	// out-of-bounds coordinates; callers must check Exists first.
	Blocked(x, y int) bool
	// Nodes returns the number of free (non-obstacle) cells. Constant for
	// the lifetime of the Grid.
	Nodes() int
	// Render draws the grid as an ASCII art: '#' for obstacles, '.' for
	// free cells, one row per line.
	Render() string
}
