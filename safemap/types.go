package safemap

import (
	"math"

	"github.com/MONICgh/sipp-go/obstacle"
)

// ExitSet is a bitset over the four cardinal directions, recording which
// directions an obstacle used to leave a cell at a given instant.
type ExitSet uint8

// The four cardinal bits. Values, not just names, matter for determinism:
// iteration over a bitset always visits them in this fixed order.
const (
	North ExitSet = 1 << iota
	East
	South
	West
)

// Has reports whether b is set in e.
func (e ExitSet) Has(b ExitSet) bool { return e&b != 0 }

// Add sets b in e.
func (e *ExitSet) Add(b ExitSet) { *e |= b }

// directionBit maps a single-step cardinal delta to its ExitSet bit. A
// non-cardinal or zero delta has no meaningful direction and yields 0;
// callers only ever feed it deltas produced by adjacent trajectory
// positions or grid offsets, both of which are cardinal by construction.
func directionBit(di, dj int) ExitSet {
	switch {
	case di == -1 && dj == 0:
		return North
	case di == 1 && dj == 0:
		return South
	case di == 0 && dj == 1:
		return East
	case di == 0 && dj == -1:
		return West
	default:
		return 0
	}
}

// Interval is a maximal span (Lo, Hi) during which a cell is free of any
// dynamic obstacle. It is open on both ends: the cell is safe for t with
// Lo < t < Hi. BlockedExits records the
// directions an obstacle left this cell at time Lo+1, which Neighbours uses
// to detect edge (swap) collisions on the cell's incoming boundary.
type Interval struct {
	Lo           int
	Hi           int // may be Inf
	BlockedExits ExitSet
}

// Inf stands in for the Python source's float('inf') upper bound of a
// still-open (never-resettled) interval.
const Inf = math.MaxInt32

// Transition is one reachable (cell, arrival-time) pair returned by
// Neighbours. Each is a move into a cardinal neighbour; a T later than
// t+1 folds a wait in the current cell before that move. Wait-in-place is
// never returned as a Transition of its own.
type Transition struct {
	Cell obstacle.Cell
	T    int
}
