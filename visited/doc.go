// Package visited implements the time-indexed visited-node ledger: for
// each grid cell, a sparse ordered record of (time, cost, predecessor)
// entries plus the best (time, cost) pair seen so far (spec.md §3, §4.6).
//
// The core subtlety is "weight at an arbitrary future time": an entry at
// t0 with cost w0 means "I can be here at time t0 with cost w0"; being
// here at any t > t0 is then equivalent to having waited, which is legal
// only if nothing occupies the cell for the whole wait window. Weight and
// Parent both derive from the latest entry at or before the queried time,
// never storing one entry per waited tick.
//
// Predecessors are stored by coordinate value, not by pointer: there is no
// owning back-pointer and therefore no possibility of a reference cycle,
// which sidesteps the difficulty an earlier draft of the original Rust
// source ran into trying to keep an owning parent link (spec.md §9).
package visited
