package visited

import "github.com/tetofonta/asd/grid"

// Occupancy is the subset of the agent reservation table the ledger needs
// to decide whether waiting through a time window is legal. agent.Manager
// satisfies this interface; the ledger package does not import agent
// directly to avoid a dependency cycle (planner wires both together).
type Occupancy interface {
	CanStay(c grid.Cell, t int) bool
}

// entry is one recorded (time, cost, predecessor) triple for a cell.
type entry struct {
	t         int
	cost      float64
	parent    grid.Cell
	hasParent bool
}

// cellRecord is the per-cell sparse timeline plus the running best.
type cellRecord struct {
	entries   []entry // sorted by t ascending
	bestTime  int
	bestCost  float64
	hasBest   bool
}
