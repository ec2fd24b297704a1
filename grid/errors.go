package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrNoFreeCell indicates RndPick exhausted the whole grid without
	// finding an unobstructed, unoccupied cell (spec.md §7 InfeasibleInstance).
	ErrNoFreeCell = errors.New("grid: no free cell available")
	// ErrZeroSize indicates a grid was constructed with width or height <= 0.
	ErrZeroSize = errors.New("grid: width and height must be positive")
)
