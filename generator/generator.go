package generator

import (
	"fmt"

	"github.com/tetofonta/asd/agent"
	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/noise"
)

// Run executes the full pipeline of spec.md §4.10 against cfg: sample the
// noise field, carve out obstacles, spawn and walk agents, pick init/goal,
// and optionally precompute the goal-distance table.
func Run(cfg Config) (*Result, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidConfig
	}
	cfg = cfg.withDefaults()

	field := noise.New(cfg.noiseOptions()...)

	var valLimit uint32
	cellLimit := -1
	if cfg.Obstacles > 0 {
		valLimit, cellLimit = selectQuantile(field, cfg.Width, cfg.Height, cfg.Obstacles)
	}

	g, err := grid.NewNoiseGrid(field, valLimit, cellLimit, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	agents := make([]*agent.Agent, 0, cfg.AgentCount)
	for i := 0; i < cfg.AgentCount; i++ {
		occupied := agent.AtTime(agents, 0, nil)
		start, err := g.RndPick(occupied)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d start: %v", ErrInfeasibleSetup, i, err)
		}
		agents = append(agents, agent.NewGenerated(cfg.Seed+uint64(i), start))
	}

	for t := 0; t < cfg.TimeMax-1; t++ {
		for _, a := range agents {
			last := a.Pos(t)
			others := agent.LastPositions(agents, &last)
			a.NextMove(g, others, cfg.StopProbability)
		}
	}

	init, err := g.RndPick(agent.AtTime(agents, 0, nil))
	if err != nil {
		return nil, fmt.Errorf("%w: init cell: %v", ErrInfeasibleSetup, err)
	}

	goalOccupied := append(agent.LastPositions(agents, nil), init)
	goal, err := pickReachableGoal(g, init, goalOccupied)
	if err != nil {
		return nil, fmt.Errorf("%w: goal cell: %v", ErrInfeasibleSetup, err)
	}

	var aux auxtable.Table
	if cfg.PrecomputeAux {
		aux = auxtable.Build(g, goal, cfg.TimeMax)
	}

	return &Result{
		Grid:      g,
		Field:     field,
		ValLimit:  valLimit,
		CellLimit: cellLimit,
		Agents:    agents,
		Init:      init,
		Goal:      goal,
		Aux:       aux,
	}, nil
}

// pickReachableGoal draws candidate goals via g.RndPick, rejecting any cell
// that grid.SameComponent says init could never reach in a time-unconstrained
// search, and retrying with the rejected cell added to the exclusion set.
// Bounded by g.Nodes() attempts, since that many draws exhausts every free
// cell at least once.
func pickReachableGoal(g grid.Grid, init grid.Cell, occupied []grid.Cell) (grid.Cell, error) {
	excluded := append([]grid.Cell(nil), occupied...)
	for attempt := 0; attempt < g.Nodes(); attempt++ {
		candidate, err := g.RndPick(excluded)
		if err != nil {
			return grid.Cell{}, err
		}
		if grid.SameComponent(g, init, candidate) {
			return candidate, nil
		}
		excluded = append(excluded, candidate)
	}
	return grid.Cell{}, grid.ErrNoFreeCell
}
