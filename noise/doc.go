// Package noise implements classical 2D Perlin noise with fractal octaves,
// used by the instance generator to decide which grid cells become
// obstacles.
//
// Overview:
//
//   - Field.NoiseU32 maps an integer cell (x,y) to a deterministic
//     uint32 drawn from [0, 2^32), stable for a given seed and config.
//   - Lattice corner gradients are derived by hashing (seed, lx, ly)
//     through an rng.RNG and reading one angle in [0, 2π).
//   - Octaves accumulate amplitude-weighted, lacunarity-scaled layers and
//     are normalised to [0, 1] before the uint32 remap.
//
// Configuration follows the functional-options pattern: DefaultOptions
// returns every default from spec.md §4.2, and With... constructors
// override one field at a time.
//
// The generator is pure: NoiseU32/Normalized never mutate Field state.
package noise
