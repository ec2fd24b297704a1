package noise

import "errors"

// Sentinel errors for the noise package's functional options.
var (
	// ErrBadOctaves indicates WithOctaves was called with a value < 1.
	ErrBadOctaves = errors.New("noise: octaves must be >= 1")
	// ErrBadCellSize indicates WithCellSize was called with a value < 1.
	ErrBadCellSize = errors.New("noise: cell size must be >= 1")
)
