package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetofonta/asd/grid"
)

// A wall of obstacles down column 3 splits a 5x3 grid into a 3-wide left
// island and a 1-wide right island, except for a single gap at (3,1).
func splitGrid(t *testing.T, gap bool) *grid.CustomGrid {
	t.Helper()
	var wall []grid.Cell
	for y := 0; y < 3; y++ {
		if gap && y == 1 {
			continue
		}
		wall = append(wall, grid.Cell{X: 3, Y: y})
	}
	g, err := grid.NewCustomGrid(1, 5, 3, wall)
	require.NoError(t, err)
	return g
}

func TestComponents_WallSplitsGridInTwo(t *testing.T) {
	g := splitGrid(t, false)
	comps := grid.Components(g)
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{3, 9}, sizes)
}

func TestComponents_DiagonalGapJoinsIslands(t *testing.T) {
	g := splitGrid(t, true)
	comps := grid.Components(g)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 13)
}

func TestSameComponent_AcrossWall(t *testing.T) {
	g := splitGrid(t, false)
	assert.False(t, grid.SameComponent(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 0}))
	assert.True(t, grid.SameComponent(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2}))
}

func TestSameComponent_BlockedCellIsNeverConnected(t *testing.T) {
	g := splitGrid(t, false)
	assert.False(t, grid.SameComponent(g, grid.Cell{X: 3, Y: 0}, grid.Cell{X: 0, Y: 0}))
}
