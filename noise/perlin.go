package noise

import (
	"math"

	"github.com/tetofonta/asd/rng"
)

// Field is a deterministic 2D Perlin noise field with fractal octaves.
// Construction is pure; querying never mutates state.
type Field struct {
	opts Options
}

// New constructs a Field from the given options, applying defaults first.
func New(opts ...Option) *Field {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return &Field{opts: cfg}
}

// Seed returns the seed this field was constructed with (defaulted to
// wall-clock microseconds if the caller never supplied one).
func (f *Field) Seed() uint64 {
	return f.opts.Seed
}

type vec2 struct{ x, y float64 }

func (a vec2) dot(b vec2) float64 {
	return a.x*b.x + a.y*b.y
}

// gradientAt derives the unit gradient vector at lattice corner (lx, ly) by
// hashing (seed, lx, ly) into an rng.RNG and reading one angle in [0, 2π).
func (f *Field) gradientAt(lx, ly int) vec2 {
	h := mixSeed(f.opts.Seed, uint64(int64(lx)), uint64(int64(ly)))
	r := rng.New(h)
	angle := (float64(r.NextU32()) / float64(math.MaxUint32)) * 2 * math.Pi
	return vec2{math.Cos(angle), math.Sin(angle)}
}

// mixSeed folds the field seed and a lattice coordinate pair into a single
// 64-bit hash, standing in for Rust's DefaultHasher over (seed, x, y); the
// exact hash function is not part of the spec's reproducibility contract,
// only that it is deterministic and seed-dependent.
func mixSeed(seed, x, y uint64) uint64 {
	h := seed
	h ^= x + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	h ^= y + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	return h
}

func smoothstep(t float64) float64 {
	return (3 - 2*t) * t * t
}

// ease blends the four corner dot products using the smoothstep weights on
// both axes, exactly the bilinear interpolation in spec.md §4.2 step 2.
func ease(a, b, c, d, ox, oy float64) float64 {
	u := (b-a)*smoothstep(ox) + a
	v := (d-c)*smoothstep(ox) + c
	return (v-u)*smoothstep(oy) + u
}

func (f *Field) get(x, y float64) float64 {
	baseX := int(math.Trunc(x))
	baseY := int(math.Trunc(y))
	offX := x - math.Trunc(x)
	offY := y - math.Trunc(y)

	g00 := f.gradientAt(baseX, baseY).dot(vec2{offX, offY})
	g10 := f.gradientAt(baseX+1, baseY).dot(vec2{offX - 1, offY})
	g01 := f.gradientAt(baseX, baseY+1).dot(vec2{offX, offY - 1})
	g11 := f.gradientAt(baseX+1, baseY+1).dot(vec2{offX - 1, offY - 1})

	return ease(g00, g10, g01, g11, offX, offY)
}

// GenNoise accumulates amplitude-weighted, lacunarity-scaled octaves at
// (x,y), unnormalised (spec.md §4.2 step 2).
func (f *Field) GenNoise(x, y int) float64 {
	xx := float64(x) / float64(f.opts.CellSize)
	yy := float64(y) / float64(f.opts.CellSize)

	var val float64
	amp := f.opts.Amplitude
	freq := f.opts.Frequency
	for o := 0; o < f.opts.Octaves; o++ {
		val += amp * f.get(xx*freq, yy*freq)
		amp *= f.opts.Persistence
		freq *= f.opts.Lacunarity
	}
	return val
}

// Normalized returns GenNoise normalised into [0, 1] (spec.md §4.2 step 3).
func (f *Field) Normalized(x, y int) float64 {
	return (f.GenNoise(x, y)/float64(f.opts.Octaves) + 1) / 2
}

// NoiseU32 quantises Normalized into [0, 2^32) (spec.md §4.2 step 3).
func (f *Field) NoiseU32(x, y int) uint32 {
	return uint32(f.Normalized(x, y) * float64(math.MaxUint32))
}
