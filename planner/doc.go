// Package planner implements the time-expanded A* search: the core
// planning engine (spec.md §4.9), its open-list node ordering (folded in
// here rather than split into its own package — see DESIGN.md), its
// path-suffix verifier (§4.9.1), and its path reconstructor (§4.9.2).
//
// The search graph is implicit: nodes are (cell, time) pairs, edges are
// legal single-tick transitions filtered by the agent reservation table
// (package agent). A visited.Ledger (package visited) records the best
// (cost, predecessor) reached so far per cell across all times, and an
// optional auxtable.Table (package auxtable) offers an early-exit shortcut
// once the agent constraints stop mattering for the rest of the walk.
//
// Heuristic and determinism: grid.Heuristic is squared Euclidean distance,
// not admissible for the sqrt(2) diagonal metric in use — a deliberate
// trade favouring goal-directed expansion over textbook A* optimality
// (spec.md §3, §9). Neighbour iteration order (grid.IterNeighbors) and the
// open-list tie-break (smaller f, then smaller time) are both fixed so
// that identical inputs always produce identical expansion order, path,
// and counters (spec.md §5).
package planner
