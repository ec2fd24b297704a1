package planner

import "errors"

// ErrInfeasibleInstance is returned when the open list drains without ever
// visiting goal, or an aux-table lookup misses on a cell the static grid
// cannot reach goal from (spec.md §7 InfeasibleInstance).
var ErrInfeasibleInstance = errors.New("planner: no path from init to goal under the given constraints")

// ErrPathVerificationFailed is returned when a reconstructed path fails its
// own re-verification, a programmer-error condition that must abort rather
// than silently degrade (spec.md §7 PathVerificationFailed).
var ErrPathVerificationFailed = errors.New("planner: reconstructed path failed verification")
