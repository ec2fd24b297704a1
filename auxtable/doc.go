// Package auxtable precomputes an optional static shortest-path-to-goal
// map: Dijkstra from the goal over the grid, ignoring agents entirely
// (spec.md §4.8). The planner uses the result as a completable suffix
// whenever the agent constraints happen to admit it (spec.md §4.9 step 5).
//
// Grounded directly on katalvlaran-lvlath/dijkstra/dijkstra.go's
// container/heap lazy-decrease-key loop, adapted from core.Graph edges to
// grid.IterNeighbors/grid.Weight. An auxiliary per-node "time" tracks hops
// from the goal and is bounded by tmax, distinct from the accumulated
// cost — deep grids do not need a full-depth static solve when the
// planner's own horizon is much shorter.
package auxtable
