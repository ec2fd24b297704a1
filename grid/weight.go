package grid

import "math"

// Weight returns the move cost from a to b: 1 for orthogonal or identical
// cells (including waiting in place), sqrt(2) for diagonal moves.
func Weight(a, b Cell) float64 {
	if a.X == b.X || a.Y == b.Y {
		return 1
	}
	return math.Sqrt2
}

// Heuristic returns the squared Euclidean distance from c to goal. This is
// intentionally not admissible for the sqrt(2)-diagonal metric; spec.md §3
// and §9 accept this as a deliberate design choice favouring goal-directed
// expansion over formal A* optimality. The exact formula matters: it
// determines expansion order and must be reproduced bit-for-bit.
func Heuristic(c, goal Cell) int64 {
	dx := int64(c.X - goal.X)
	dy := int64(c.Y - goal.Y)
	return dx*dx + dy*dy
}
