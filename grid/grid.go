package grid

import (
	"strings"

	"github.com/tetofonta/asd/noise"
	"github.com/tetofonta/asd/rng"
)

// NoiseGrid is a Grid whose obstacles are the K smallest-ranked Perlin
// noise cells, as selected by valLimit/cellLimit (spec.md §4.3).
type NoiseGrid struct {
	width, height int
	field         *noise.Field
	valLimit      uint32
	cellLimit     int
	nodes         int
	rnd           *rng.RNG
}

// NewNoiseGrid constructs a NoiseGrid. valLimit and cellLimit are the
// (value, row-major index) pair identifying the K-th smallest noise value,
// as produced by the quantile selection in package generator. The grid's
// internal RNG (used only by RndPick) is seeded from field.Seed(),
// mirroring Field::new(noise, ...) in original_source/field.rs.
func NewNoiseGrid(field *noise.Field, valLimit uint32, cellLimit, width, height int) (*NoiseGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroSize
	}
	g := &NoiseGrid{
		width:     width,
		height:    height,
		field:     field,
		valLimit:  valLimit,
		cellLimit: cellLimit,
		rnd:       rng.New(field.Seed()),
	}
	g.nodes = countFree(g)
	return g, nil
}

func (g *NoiseGrid) Width() int  { return g.width }
func (g *NoiseGrid) Height() int { return g.height }
func (g *NoiseGrid) Exists(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Blocked implements the tie-break rule from spec.md §4.3: a cell is an
// obstacle if its noise value is strictly below the limit, or equal to the
// limit and at or before the limit cell in row-major order. This
// guarantees exactly K obstacles even under noise value ties (the "<=" variant; see spec.md §9 Open Questions).
func (g *NoiseGrid) Blocked(x, y int) bool {
	val := g.field.NoiseU32(x, y)
	if val < g.valLimit {
		return true
	}
	return val == g.valLimit && y*g.width+x <= g.cellLimit
}

func (g *NoiseGrid) Nodes() int { return g.nodes }

func (g *NoiseGrid) Render() string { return render(g) }

// RndPick returns a free cell not present in occupied. See package-level
// rndPick for the algorithm.
func (g *NoiseGrid) RndPick(occupied []Cell) (Cell, error) {
	return rndPick(g, g.rnd, occupied)
}

// CustomGrid is a Grid whose obstacles are an explicit set of cells.
type CustomGrid struct {
	width, height int
	obstacles     map[Cell]struct{}
	nodes         int
	rnd           *rng.RNG
}

// NewCustomGrid constructs a CustomGrid from an explicit obstacle set. seed
// drives the internal RNG used only by RndPick.
func NewCustomGrid(seed uint64, width, height int, obstacles []Cell) (*CustomGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroSize
	}
	set := make(map[Cell]struct{}, len(obstacles))
	for _, c := range obstacles {
		set[c] = struct{}{}
	}
	g := &CustomGrid{
		width:     width,
		height:    height,
		obstacles: set,
		rnd:       rng.New(seed),
	}
	g.nodes = countFree(g)
	return g, nil
}

func (g *CustomGrid) Width() int  { return g.width }
func (g *CustomGrid) Height() int { return g.height }
func (g *CustomGrid) Exists(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
func (g *CustomGrid) Blocked(x, y int) bool {
	_, ok := g.obstacles[Cell{x, y}]
	return ok
}
func (g *CustomGrid) Nodes() int { return g.nodes }

func (g *CustomGrid) Render() string { return render(g) }

// RndPick returns a free cell not present in occupied. See package-level
// rndPick for the algorithm.
func (g *CustomGrid) RndPick(occupied []Cell) (Cell, error) {
	return rndPick(g, g.rnd, occupied)
}

func countFree(g Grid) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.Blocked(x, y) {
				n++
			}
		}
	}
	return n
}

// rndPick draws (x,y) uniformly from the grid; if blocked or occupied it
// walks row-major (x++, wrapping y++) at most Width*Height steps before
// failing, exactly spec.md §4.3's rnd_pick.
func rndPick(g Grid, r *rng.RNG, occupied []Cell) (Cell, error) {
	w, h := g.Width(), g.Height()
	x := int(r.NextU64() % uint64(w))
	y := int(r.NextU64() % uint64(h))

	isOccupied := func(c Cell) bool {
		for _, o := range occupied {
			if o == c {
				return true
			}
		}
		return false
	}

	for times := 0; g.Blocked(x, y) || isOccupied(Cell{x, y}); {
		x = (x + 1) % w
		if x == 0 {
			y = (y + 1) % h
		}
		times++
		if times >= w*h {
			return Cell{}, ErrNoFreeCell
		}
	}
	return Cell{x, y}, nil
}

func render(g Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Blocked(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
