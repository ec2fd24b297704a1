package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetofonta/asd/agent"
	"github.com/tetofonta/asd/grid"
)

func TestFromPath_PosClampsPastEnd(t *testing.T) {
	path := []grid.Cell{{0, 0}, {1, 0}, {2, 0}}
	a := agent.FromPath(path)

	assert.Equal(t, grid.Cell{0, 0}, a.Pos(0))
	assert.Equal(t, grid.Cell{2, 0}, a.Pos(2))
	assert.Equal(t, grid.Cell{2, 0}, a.Pos(100))
	assert.True(t, a.Stopped())
}

func TestNewGenerated_WalksAndCanStop(t *testing.T) {
	g, err := grid.NewCustomGrid(1, 5, 5, nil)
	require.NoError(t, err)

	a := agent.NewGenerated(7, grid.Cell{2, 2})
	for i := 0; i < 10 && !a.Stopped(); i++ {
		a.NextMove(g, nil, 0.3)
	}

	assert.GreaterOrEqual(t, len(a.Moves()), 1)
}

func TestNewGenerated_Deterministic(t *testing.T) {
	g, err := grid.NewCustomGrid(1, 5, 5, nil)
	require.NoError(t, err)

	a1 := agent.NewGenerated(7, grid.Cell{2, 2})
	a2 := agent.NewGenerated(7, grid.Cell{2, 2})
	for i := 0; i < 10; i++ {
		a1.NextMove(g, nil, 0.0)
		a2.NextMove(g, nil, 0.0)
	}
	assert.Equal(t, a1.Moves(), a2.Moves())
}

func TestManager_CanStayAndIsTraversable(t *testing.T) {
	fixed := agent.FromPath([]grid.Cell{{1, 0}, {0, 0}})
	mgr := agent.NewManager([]*agent.Agent{fixed})

	// Swap conflict: planner at (0,0)->(1,0) while agent goes (1,0)->(0,0).
	assert.False(t, mgr.IsTraversable(grid.Cell{0, 0}, grid.Cell{1, 0}, 0))
	assert.False(t, mgr.CanStay(grid.Cell{1, 0}, 0))
	assert.True(t, mgr.CanStay(grid.Cell{2, 2}, 0))
}

func TestAtTimeAndLastPositions_ExcludeSelf(t *testing.T) {
	a1 := agent.FromPath([]grid.Cell{{0, 0}})
	a2 := agent.FromPath([]grid.Cell{{1, 1}})
	agents := []*agent.Agent{a1, a2}

	excl := grid.Cell{0, 0}
	at := agent.AtTime(agents, 0, &excl)
	assert.Equal(t, []grid.Cell{{1, 1}}, at)

	last := agent.LastPositions(agents, &excl)
	assert.Equal(t, []grid.Cell{{1, 1}}, last)
}
