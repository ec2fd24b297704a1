package agent

import (
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/rng"
)

// Agent is one other mover's position timeline. A stopped agent (every
// agent built with FromPath, or one that has hit its stop probability)
// reports its last recorded position for all t >= len(moves)-1.
type Agent struct {
	moves   []grid.Cell
	rnd     *rng.RNG
	stopped bool
}

// NewGenerated constructs a random-walking Agent starting at start, seeded
// deterministically from seed. Call NextMove once per tick to grow its
// timeline (spec.md §4.4).
func NewGenerated(seed uint64, start grid.Cell) *Agent {
	return &Agent{
		moves: []grid.Cell{start},
		rnd:   rng.New(seed),
	}
}

// FromPath constructs a frozen Agent from an explicit, already-complete
// path (solver side; spec.md §3 "stopped-from-construction").
func FromPath(path []grid.Cell) *Agent {
	moves := make([]grid.Cell, len(path))
	copy(moves, path)
	return &Agent{moves: moves, stopped: true}
}

// Pos returns the agent's position at time t: P[t] if t is within the
// recorded timeline, else the last recorded position (spec.md §3, §4.4).
func (a *Agent) Pos(t int) grid.Cell {
	if t < len(a.moves) {
		return a.moves[t]
	}
	return a.lastPos()
}

func (a *Agent) lastPos() grid.Cell {
	return a.moves[len(a.moves)-1]
}

// Moves returns the agent's recorded timeline. The caller must not mutate
// the returned slice.
func (a *Agent) Moves() []grid.Cell {
	return a.moves
}

// Stop permanently freezes the agent at its current last position.
func (a *Agent) Stop() {
	a.stopped = true
}

// Stopped reports whether the agent has stopped moving.
func (a *Agent) Stopped() bool {
	return a.stopped
}

// NextMove appends one tick of random walk, picking uniformly among the
// neighbours of the agent's current position that are not occupied by
// others (the current-last positions of the other agents, supplied by the
// caller), then stops with probability stopProb (spec.md §4.4). A no-op
// once the agent has stopped.
func (a *Agent) NextMove(g grid.Grid, others []grid.Cell, stopProb float64) {
	if a.stopped {
		return
	}

	pos := a.lastPos()
	candidates := make([]grid.Cell, 0, 9)
	for _, n := range grid.IterNeighbors(g, pos) {
		occupied := false
		for _, o := range others {
			if o == n {
				occupied = true
				break
			}
		}
		if !occupied {
			candidates = append(candidates, n)
		}
	}

	if len(candidates) == 0 {
		// No legal move this tick (every neighbour, including waiting in
		// place, is occupied); stay put without consuming RNG state.
		return
	}

	next := candidates[a.rnd.NextU64()%uint64(len(candidates))]
	a.moves = append(a.moves, next)

	if (float64(a.rnd.NextU32()) / float64(^uint32(0))) < stopProb {
		a.Stop()
	}
}
