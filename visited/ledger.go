package visited

import (
	"math"
	"sort"

	"github.com/tetofonta/asd/grid"
)

// Ledger is the visited-node ledger: one cellRecord per cell that has ever
// been relaxed. The zero value is not usable; construct with NewLedger.
type Ledger struct {
	cells map[grid.Cell]*cellRecord
	occ   Occupancy
}

// NewLedger constructs an empty Ledger. occ answers CanStay queries used
// to decide whether waiting through a gap is legal.
func NewLedger(occ Occupancy) *Ledger {
	return &Ledger{cells: make(map[grid.Cell]*cellRecord), occ: occ}
}

// Has reports whether c has ever been relaxed.
func (l *Ledger) Has(c grid.Cell) bool {
	_, ok := l.cells[c]
	return ok
}

// record returns the cellRecord for c, creating an empty one if absent.
func (l *Ledger) record(c grid.Cell) *cellRecord {
	r, ok := l.cells[c]
	if !ok {
		r = &cellRecord{}
		l.cells[c] = r
	}
	return r
}

// latestAtOrBefore returns the last entry in r.entries with t <= at, and
// whether one was found.
func latestAtOrBefore(r *cellRecord, at int) (entry, bool) {
	// entries is sorted ascending by t; find the rightmost index with
	// entries[i].t <= at via sort.Search on the complementary predicate.
	idx := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].t > at
	})
	if idx == 0 {
		return entry{}, false
	}
	return r.entries[idx-1], true
}

// Weight returns weight(c, t): the cost of being at c at time t, derived
// from the latest recorded entry at or before t plus the cost of waiting
// from there, or +Inf if the wait would cross an occupied tick or c has
// never been recorded at all (spec.md §3, §4.6).
func (l *Ledger) Weight(c grid.Cell, t int) float64 {
	r, ok := l.cells[c]
	if !ok {
		return math.Inf(1)
	}
	e, ok := latestAtOrBefore(r, t)
	if !ok {
		return math.Inf(1)
	}
	for tt := e.t; tt < t; tt++ {
		if !l.occ.CanStay(c, tt) {
			return math.Inf(1)
		}
	}
	return e.cost + float64(t-e.t)
}

// Parent returns the predecessor to use when reconstructing the path that
// arrives at c at time t: the recorded predecessor if an entry exists at
// exactly t, or c itself (meaning "waited here") if an earlier entry
// covers t. ok is false if no entry at or before t exists at all.
func (l *Ledger) Parent(c grid.Cell, t int) (parent grid.Cell, ok bool) {
	r, exists := l.cells[c]
	if !exists {
		return grid.Cell{}, false
	}
	e, found := latestAtOrBefore(r, t)
	if !found {
		return grid.Cell{}, false
	}
	if e.t == t {
		if !e.hasParent {
			return grid.Cell{}, false
		}
		return e.parent, true
	}
	return c, true
}

// Best returns the (time, cost) pair with minimum cost seen for c (ties
// broken toward the smaller time), and whether c has ever been recorded.
func (l *Ledger) Best(c grid.Cell) (t int, cost float64, ok bool) {
	r, exists := l.cells[c]
	if !exists || !r.hasBest {
		return 0, 0, false
	}
	return r.bestTime, r.bestCost, true
}

// Set relaxes cell c at time t with cost w and predecessor parent
// (parentOK=false for the initial node, which has no predecessor),
// following the four-case update rule of spec.md §4.6:
//
//  1. best is updated if w is strictly better, or ties with a smaller time.
//  2. if no entry exists at or before t, or either predecessor is absent,
//     insert unconditionally.
//  3. if the latest entry at or before t shares the same predecessor,
//     insert only when the derived weight at t strictly worsens (i.e. this
//     call strictly improves on it); otherwise the ledger is left
//     untouched, so repeated relaxations from the same parent never
//     multiply entries once the waiting cost already dominates.
//  4. otherwise insert.
func (l *Ledger) Set(c grid.Cell, t int, w float64, parent grid.Cell, parentOK bool) {
	r := l.record(c)

	if !r.hasBest || w < r.bestCost || (w == r.bestCost && t < r.bestTime) {
		r.hasBest = true
		r.bestCost = w
		r.bestTime = t
	}

	prev, hasPrev := latestAtOrBefore(r, t)

	insert := false
	switch {
	case !hasPrev:
		insert = true
	case !prev.hasParent || !parentOK:
		insert = true
	case prev.parent == parent:
		insert = l.Weight(c, t) > w
	default:
		insert = true
	}

	if !insert {
		return
	}

	l.insertEntry(r, entry{t: t, cost: w, parent: parent, hasParent: parentOK})
}

// insertEntry inserts e into r.entries keeping it sorted by t, replacing
// any existing entry at exactly e.t.
func (l *Ledger) insertEntry(r *cellRecord, e entry) {
	idx := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].t >= e.t
	})
	if idx < len(r.entries) && r.entries[idx].t == e.t {
		r.entries[idx] = e
		return
	}
	r.entries = append(r.entries, entry{})
	copy(r.entries[idx+1:], r.entries[idx:])
	r.entries[idx] = e
}
