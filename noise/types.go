package noise

import "time"

// Options configures a Field. Zero value is not meaningful on its own; use
// DefaultOptions and override with With... functions, mirroring
// dijkstra.Options/WithX in the teacher package.
type Options struct {
	Seed        uint64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Amplitude   float64
	Frequency   float64
	CellSize    int
}

// Option is a functional option for configuring a Field.
type Option func(*Options)

// DefaultOptions returns the spec.md §4.2 defaults: octaves=1,
// persistence=0.5, lacunarity=2.0, amplitude=1.0, frequency=1.0,
// cell_size=100, seed=current wall-clock microseconds.
func DefaultOptions() Options {
	return Options{
		Seed:        uint64(time.Now().UnixMicro()),
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Amplitude:   1.0,
		Frequency:   1.0,
		CellSize:    100,
	}
}

// WithSeed overrides the RNG seed used for lattice gradient hashing.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOctaves sets the number of fractal octaves accumulated per sample.
// Panics if octaves < 1.
func WithOctaves(octaves int) Option {
	return func(o *Options) {
		if octaves < 1 {
			panic(ErrBadOctaves.Error())
		}
		o.Octaves = octaves
	}
}

// WithPersistence sets the per-octave amplitude damping factor.
func WithPersistence(persistence float64) Option {
	return func(o *Options) { o.Persistence = persistence }
}

// WithLacunarity sets the per-octave frequency multiplier.
func WithLacunarity(lacunarity float64) Option {
	return func(o *Options) { o.Lacunarity = lacunarity }
}

// WithAmplitude sets the starting amplitude of octave 0.
func WithAmplitude(amplitude float64) Option {
	return func(o *Options) { o.Amplitude = amplitude }
}

// WithFrequency sets the starting frequency of octave 0.
func WithFrequency(frequency float64) Option {
	return func(o *Options) { o.Frequency = frequency }
}

// WithCellSize sets the lattice cell size (coordinates are divided by this
// before sampling). Panics if cellSize < 1.
func WithCellSize(cellSize int) Option {
	return func(o *Options) {
		if cellSize < 1 {
			panic(ErrBadCellSize.Error())
		}
		o.CellSize = cellSize
	}
}
