package generator

import "errors"

// ErrInvalidConfig indicates a structurally unusable Config (zero or
// negative width/height).
var ErrInvalidConfig = errors.New("generator: invalid config")

// ErrInfeasibleSetup indicates rnd_pick could not find a free cell while
// placing an agent, init, or goal (spec.md §7 InfeasibleInstance).
var ErrInfeasibleSetup = errors.New("generator: could not place a required cell")
