package ioformat

import (
	"fmt"

	"github.com/tetofonta/asd/agent"
	"github.com/tetofonta/asd/generator"
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/noise"
	"github.com/tetofonta/asd/planner"
)

func cellToArray(c grid.Cell) [2]int { return [2]int{c.X, c.Y} }
func arrayToCell(a [2]int) grid.Cell { return grid.Cell{X: a[0], Y: a[1]} }

func pathToArrays(path []grid.Cell) [][2]int {
	out := make([][2]int, len(path))
	for i, c := range path {
		out[i] = cellToArray(c)
	}
	return out
}

func arraysToPath(arrs [][2]int) []grid.Cell {
	out := make([]grid.Cell, len(arrs))
	for i, a := range arrs {
		out[i] = arrayToCell(a)
	}
	return out
}

// SettingsToConfig builds a generator.Config from a decoded Settings
// document, layering it over generator.DefaultConfig so any field the
// document omits keeps its spec default (mirrors
// original_source/instance_gen/args.rs::Config::load_from_file, which
// starts from Config::defaults() and only overwrites fields present in the
// YAML document).
func SettingsToConfig(s Settings) generator.Config {
	cfg := generator.DefaultConfig()

	if s.ID != "" {
		cfg.ID = s.ID
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
	if s.Size != nil {
		cfg.Width = s.Size.Width
		cfg.Height = s.Size.Height
	}
	if s.Obstacles != nil {
		cfg.Obstacles = *s.Obstacles
	}
	if s.TimeMax != nil {
		cfg.TimeMax = *s.TimeMax
	}
	cfg.Greedy = s.Greedy
	if s.AuxPath != "" {
		cfg.AuxPath = s.AuxPath
		cfg.PrecomputeAux = true
	}
	if s.Agents != nil {
		cfg.AgentCount = s.Agents.Number
		cfg.StopProbability = s.Agents.StopProbability
	}
	if s.Noise != nil {
		cfg.Octaves = s.Noise.Octaves
		cfg.Persistence = s.Noise.Persistence
		cfg.Lacunarity = s.Noise.Lacunarity
		cfg.Amplitude = s.Noise.Amplitude
		cfg.Frequency = s.Noise.Frequency
		cfg.CellSize = s.Noise.CellSize
	}

	return cfg
}

// InstanceFromResult assembles the generator-output Instance document from
// one generator.Run result, mirroring
// original_source/instance_gen/output.rs::OutSettings::new.
func InstanceFromResult(cfg generator.Config, res *generator.Result) Instance {
	paths := make([][][2]int, len(res.Agents))
	for i, a := range res.Agents {
		paths[i] = pathToArrays(a.Moves())
	}

	return Instance{
		Kind:    "instance",
		ID:      cfg.ID,
		Seed:    cfg.Seed,
		Greedy:  cfg.Greedy,
		TimeMax: cfg.TimeMax,
		AuxPath: cfg.AuxPath,
		Init:    cellToArray(res.Init),
		Goal:    cellToArray(res.Goal),
		Grid: GridConfig{
			Width:     cfg.Width,
			Height:    cfg.Height,
			Obstacles: cfg.Obstacles,
			Noise: &NoiseConfig{
				Octaves:     *cfg.Octaves,
				Persistence: *cfg.Persistence,
				Lacunarity:  *cfg.Lacunarity,
				Amplitude:   *cfg.Amplitude,
				Frequency:   *cfg.Frequency,
				CellSize:    *cfg.CellSize,
				ValLimit:    res.ValLimit,
				CellLimit:   res.CellLimit,
			},
		},
		Agents: AgentsConfig{Paths: paths},
	}
}

// InstanceToGrid builds the solver-side Grid from a decoded Instance
// document, dispatching on which of Noise/Custom is populated (mirrors
// original_source/solver/main.rs::create_field_from_configs).
func InstanceToGrid(inst Instance) (grid.Grid, error) {
	g := inst.Grid
	switch {
	case g.Noise != nil && g.Custom != nil:
		return nil, fmt.Errorf("%w: grid has both noise and custom obstacle sources", ErrConfigInvalid)
	case g.Noise != nil:
		field := noise.New(
			noise.WithSeed(inst.Seed),
			noise.WithOctaves(g.Noise.Octaves),
			noise.WithPersistence(g.Noise.Persistence),
			noise.WithLacunarity(g.Noise.Lacunarity),
			noise.WithAmplitude(g.Noise.Amplitude),
			noise.WithFrequency(g.Noise.Frequency),
			noise.WithCellSize(g.Noise.CellSize),
		)
		return grid.NewNoiseGrid(field, g.Noise.ValLimit, g.Noise.CellLimit, g.Width, g.Height)
	case g.Custom != nil:
		obstacles := arraysToPath(*g.Custom)
		return grid.NewCustomGrid(inst.Seed, g.Width, g.Height, obstacles)
	default:
		return nil, fmt.Errorf("%w: grid has neither noise nor custom obstacle source", ErrConfigInvalid)
	}
}

// InstanceToManager builds the frozen agent.Manager from an Instance
// document's scripted paths.
func InstanceToManager(inst Instance) *agent.Manager {
	agents := make([]*agent.Agent, len(inst.Agents.Paths))
	for i, p := range inst.Agents.Paths {
		agents[i] = agent.FromPath(arraysToPath(p))
	}
	return agent.NewManager(agents)
}

// SolutionFromPlan converts a planner.Solution into the solver-output
// Solution document.
func SolutionFromPlan(sol *planner.Solution) Solution {
	return Solution{
		Kind:           "solution",
		ExpandedStates: sol.Expanded,
		OpenedStates:   sol.Opened,
		PathInfo: PathInfo{
			Path:   pathToArrays(sol.Path),
			Weight: sol.Weight,
			Time:   sol.Time,
			Waits:  sol.Waits,
		},
	}
}
