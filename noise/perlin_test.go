package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetofonta/asd/noise"
)

func TestNoiseU32_Deterministic(t *testing.T) {
	a := noise.New(noise.WithSeed(42), noise.WithOctaves(3), noise.WithCellSize(5))
	b := noise.New(noise.WithSeed(42), noise.WithOctaves(3), noise.WithCellSize(5))

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, a.NoiseU32(x, y), b.NoiseU32(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestNoiseU32_DifferentSeedsDiffer(t *testing.T) {
	a := noise.New(noise.WithSeed(1), noise.WithCellSize(5))
	b := noise.New(noise.WithSeed(2), noise.WithCellSize(5))

	differs := false
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if a.NoiseU32(x, y) != b.NoiseU32(x, y) {
				differs = true
			}
		}
	}
	assert.True(t, differs)
}

func TestNormalized_IsBounded(t *testing.T) {
	f := noise.New(noise.WithSeed(7), noise.WithOctaves(4), noise.WithCellSize(8))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := f.Normalized(x, y)
			assert.GreaterOrEqual(t, v, -0.5)
			assert.LessOrEqual(t, v, 1.5)
		}
	}
}

func TestWithOctaves_PanicsBelowOne(t *testing.T) {
	assert.Panics(t, func() {
		noise.New(noise.WithOctaves(0))
	})
}

func TestWithCellSize_PanicsBelowOne(t *testing.T) {
	assert.Panics(t, func() {
		noise.New(noise.WithCellSize(0))
	})
}
