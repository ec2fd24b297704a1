// Package grid implements the bounded 2D grid model shared by the
// generator and the solver: an obstacle predicate, an 8-connected
// neighbourhood iterator that includes the centre cell itself (the "wait"
// move), and the weight/heuristic functions the planner relies on.
//
// Two grid variants exist, dispatched through the Grid interface rather
// than a class hierarchy (spec.md §9 Design Notes: "avoid deep
// hierarchies"):
//
//   - NoiseGrid: obstacle ⇔ Perlin rank below a threshold (§4.3).
//   - CustomGrid: obstacle ⇔ membership in an explicit set.
//
// Both are immutable after construction: the set of free cells never
// changes once a Grid is built.
package grid
