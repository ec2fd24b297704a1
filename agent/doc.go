// Package agent models the other, fully-scripted movers on the grid: their
// per-tick positions (Agent) and the reservation queries the planner needs
// to avoid colliding with them (Manager).
//
// Two Agent construction paths exist (spec.md §3):
//
//   - FromPath: a frozen, explicit timeline — used by the solver.
//   - NewGenerated: a random walker that grows one tick at a time via
//     NextMove — used by the instance generator.
//
// Manager is a thin, stateless view over a frozen set of Agents answering
// CanStay and IsTraversable in O(agents) per query (spec.md §4.5); no
// precomputed index is required at the scale this planner targets.
package agent
