package generator

import (
	"time"

	"github.com/tetofonta/asd/agent"
	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/noise"
)

// Config is the generator's own input: everything needed to reproduce one
// instance deterministically from a seed. Noise parameters are pointers so
// a caller (typically package ioformat decoding a "settings" document) can
// distinguish "not specified, use the default" from an explicit zero,
// mirroring original_source/instance_gen/args.rs's Option<T> fields.
type Config struct {
	ID    string
	Seed  uint64
	Width int
	Height int

	Obstacles int
	TimeMax   int
	Greedy    bool

	AgentCount      int
	StopProbability float64

	PrecomputeAux bool
	AuxPath       string

	Octaves     *int
	Persistence *float64
	Lacunarity  *float64
	Amplitude   *float64
	Frequency   *float64
	CellSize    *int
}

// DefaultConfig returns the spec-aligned defaults from
// original_source/instance_gen/args.rs::Config::defaults: a 10x10 grid, 30
// obstacles, a single non-stopping agent, time_max=100, and a seed drawn
// from wall-clock microseconds.
func DefaultConfig() Config {
	return Config{
		ID:        "none",
		Seed:      uint64(time.Now().UnixMicro()),
		Width:     10,
		Height:    10,
		Obstacles: 30,
		TimeMax:   100,
		AgentCount: 1,
	}
}

// withDefaults returns a copy of c with every unset noise pointer filled
// in from spec.md §4.2's defaults (cell size defaults to max(width,
// height), matching the original's max(cfg.size.0, cfg.size.1)).
func (c Config) withDefaults() Config {
	if c.Octaves == nil {
		v := 1
		c.Octaves = &v
	}
	if c.Persistence == nil {
		v := 0.5
		c.Persistence = &v
	}
	if c.Lacunarity == nil {
		v := 2.0
		c.Lacunarity = &v
	}
	if c.Amplitude == nil {
		v := 1.0
		c.Amplitude = &v
	}
	if c.Frequency == nil {
		v := 1.0
		c.Frequency = &v
	}
	if c.CellSize == nil {
		v := c.Width
		if c.Height > v {
			v = c.Height
		}
		c.CellSize = &v
	}
	return c
}

func (c Config) noiseOptions() []noise.Option {
	return []noise.Option{
		noise.WithSeed(c.Seed),
		noise.WithOctaves(*c.Octaves),
		noise.WithPersistence(*c.Persistence),
		noise.WithLacunarity(*c.Lacunarity),
		noise.WithAmplitude(*c.Amplitude),
		noise.WithFrequency(*c.Frequency),
		noise.WithCellSize(*c.CellSize),
	}
}

// Result is the fully generated instance, ready for ioformat to serialise.
type Result struct {
	Grid      *grid.NoiseGrid
	Field     *noise.Field
	ValLimit  uint32
	CellLimit int

	Agents []*agent.Agent
	Init   grid.Cell
	Goal   grid.Cell

	Aux auxtable.Table // nil unless Config.PrecomputeAux was set
}
