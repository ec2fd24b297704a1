package agent

import "github.com/tetofonta/asd/grid"

// Manager is a reservation table over a frozen set of Agents (spec.md
// §3, §4.5).
type Manager struct {
	agents []*Agent
}

// NewManager constructs a Manager over the given agents. The slice is not
// copied; callers must not mutate it afterwards.
func NewManager(agents []*Agent) *Manager {
	return &Manager{agents: agents}
}

// Agents returns the managed agents.
func (m *Manager) Agents() []*Agent {
	return m.agents
}

// CanStay reports whether no agent occupies pos at time t.
func (m *Manager) CanStay(pos grid.Cell, t int) bool {
	for _, a := range m.agents {
		if a.Pos(t) == pos {
			return false
		}
	}
	return true
}

// IsTraversable reports whether moving from -> to between time t and t+1
// is legal: no agent is at `to` at t+1 (a vertex conflict), and no agent
// swaps places with us (at `from` at t+1 while having been at `to` at t).
func (m *Manager) IsTraversable(from, to grid.Cell, t int) bool {
	for _, a := range m.agents {
		if a.Pos(t+1) == to {
			return false
		}
		if a.Pos(t+1) == from && a.Pos(t) == to {
			return false
		}
	}
	return true
}

// AtTime returns the positions of every managed agent at time t, optionally
// excluding one position.
func AtTime(agents []*Agent, t int, exclude *grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, len(agents))
	for _, a := range agents {
		p := a.Pos(t)
		if exclude != nil && p == *exclude {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LastPositions returns the last recorded position of every managed agent,
// optionally excluding one position (used by the generator to avoid an
// agent counting its own current cell as occupied).
func LastPositions(agents []*Agent, exclude *grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, len(agents))
	for _, a := range agents {
		p := a.lastPos()
		if exclude != nil && p == *exclude {
			continue
		}
		out = append(out, p)
	}
	return out
}
