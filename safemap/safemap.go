package safemap

import (
	"fmt"
	"sort"

	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/obstacle"
)

// offsets enumerates the four cardinal moves in a fixed order so that
// Neighbours produces deterministic output for a given input.
var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// SafeMap is the safe-interval decomposition of a Grid under a fixed set of
// obstacle trajectories. It is built once by Build and never mutated.
type SafeMap struct {
	Width, Height int
	intervals     [][][]Interval // [i][j] -> sorted, disjoint intervals
}

// event is one (time, exit-direction) occurrence of an obstacle passing
// through a cell, used only during Build.
type event struct {
	t      int
	di, dj int // direction the obstacle left this cell after time t; (0,0) if it settled here
}

type cellKey struct{ i, j int }

// Build walks every trajectory once and partitions each traversable cell's
// timeline into safe intervals.
//
// Grounded directly on original_source's SafeMap.__init__: for each cell,
// collect the (time, exit-direction) events contributed by every
// trajectory passing through it, sort by time, then walk the sorted events
// emitting a gap interval for every span of at least one unoccupied
// timestep and accumulating the exit directions seen at each occupied
// instant into BlockedExits. A cell no trajectory ever settles in is left
// with one trailing (oldT, Inf) interval; a cell some trajectory settles in
// stops emitting once that settle time is reached, since the cell is
// occupied forever afterwards.
func Build(g *grid.Grid, trajectories []obstacle.Trajectory) (*SafeMap, error) {
	events := make(map[cellKey][]event)
	settleTime := make(map[cellKey]int)

	for _, traj := range trajectories {
		if len(traj) == 0 {
			continue
		}
		for t, cell := range traj {
			k := cellKey{cell.I, cell.J}
			var di, dj int
			if t < len(traj)-1 {
				next := traj[t+1]
				di, dj = next.I-cell.I, next.J-cell.J
			}
			events[k] = append(events[k], event{t: t, di: di, dj: dj})
		}
		last := traj[len(traj)-1]
		settleTime[cellKey{last.I, last.J}] = traj.SettledAt()
	}

	sm := &SafeMap{Width: g.Width, Height: g.Height}
	sm.intervals = make([][][]Interval, g.Height)
	for i := 0; i < g.Height; i++ {
		sm.intervals[i] = make([][]Interval, g.Width)
		for j := 0; j < g.Width; j++ {
			if !g.Traversable(i, j) {
				continue
			}
			sm.intervals[i][j] = buildCellIntervals(events[cellKey{i, j}], settleTime, cellKey{i, j})
		}
	}

	return sm, nil
}

func buildCellIntervals(evs []event, settleTime map[cellKey]int, k cellKey) []Interval {
	if len(evs) == 0 {
		return []Interval{{Lo: -1, Hi: Inf}}
	}

	sort.Slice(evs, func(a, b int) bool { return evs[a].t < evs[b].t })

	settle, settled := settleTime[k]

	var out []Interval
	oldT := -1
	var exits ExitSet
	for _, ev := range evs {
		if settled && ev.t > settle {
			break
		}
		if ev.t != oldT {
			if ev.t-oldT > 1 {
				out = append(out, Interval{Lo: oldT, Hi: ev.t, BlockedExits: exits})
			}
			exits = 0
			oldT = ev.t
		}
		if ev.di != 0 || ev.dj != 0 {
			exits.Add(directionBit(ev.di, ev.dj))
		}
	}
	if !settled {
		out = append(out, Interval{Lo: oldT, Hi: Inf, BlockedExits: exits})
	}

	return out
}

// InBounds reports whether (i,j) is within the map's extent.
func (m *SafeMap) InBounds(i, j int) bool {
	return i >= 0 && i < m.Height && j >= 0 && j < m.Width
}

// GetInterval returns the index of the first interval in the cell's list
// whose Hi exceeds t, or -1 if (i,j) is out of bounds, is not traversable,
// or t lies beyond every recorded interval. That interval is the only one
// that can contain t, but it does not contain t when t <= Lo; Traversable
// and Neighbours check Lo < t themselves.
//
// Complexity: O(log k) via binary search on the sorted, disjoint Hi bounds.
func (m *SafeMap) GetInterval(i, j, t int) int {
	if !m.InBounds(i, j) {
		return -1
	}
	ivs := m.intervals[i][j]
	if len(ivs) == 0 || ivs[len(ivs)-1].Hi <= t {
		return -1
	}

	lo, hi := -1, len(ivs)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if ivs[mid].Hi <= t {
			lo = mid
		} else {
			hi = mid
		}
	}

	return hi
}

// Traversable reports whether (i,j) is free of every dynamic obstacle
// strictly at time t.
func (m *SafeMap) Traversable(i, j, t int) bool {
	idx := m.GetInterval(i, j, t)
	if idx == -1 {
		return false
	}
	iv := m.intervals[i][j][idx]

	return iv.Lo < t && t < iv.Hi
}

// Neighbours enumerates every reachable (cell, arrival-time) transition
// out of a node known to sit strictly inside one of (i,j)'s safe
// intervals at time t. The wait-in-place transition is not included here:
// callers that need it synthesize it themselves from the same interval's
// Hi bound, since it never crosses a cell boundary and so carries no
// collision risk beyond what the interval itself already encodes.
//
// For every cardinal neighbour, Neighbours walks the neighbour's safe
// intervals overlapping [t+1, f] (f being the current interval's Hi) and,
// for each, computes the earliest arrival not blocked by cell occupancy.
// It additionally detects edge (swap) collisions on the neighbour's
// entering boundary: if the agent would arrive at the neighbour at time f
// (leaving (i,j) at f-1, its last safe instant) and that is the neighbour
// interval's very first safe instant (Lo+1), and an obstacle is recorded
// as having left the neighbour towards (i,j) at that same instant, the two
// would have swapped places mid-edge. The arrival is pushed one timestep
// later, which puts it past f, so that neighbour interval is skipped.
func (m *SafeMap) Neighbours(i, j, t int) ([]Transition, error) {
	idx := m.GetInterval(i, j, t)
	if idx == -1 {
		return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrInconsistentNeighbourState, i, j, t)
	}
	cur := m.intervals[i][j][idx]
	if !(cur.Lo < t && t < cur.Hi) {
		return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrInconsistentNeighbourState, i, j, t)
	}
	f := cur.Hi
	tNext := t + 1

	var out []Transition
	for _, d := range offsets {
		di, dj := i+d[0], j+d[1]
		if !m.InBounds(di, dj) {
			continue
		}
		ivs := m.intervals[di][dj]
		if len(ivs) == 0 {
			continue
		}

		loIdx := m.GetInterval(di, dj, tNext)
		if loIdx == -1 {
			continue
		}
		hiIdx := m.GetInterval(di, dj, f)
		if hiIdx == -1 {
			hiIdx = len(ivs) - 1
		}

		for k := loIdx; k <= hiIdx; k++ {
			iv := ivs[k]
			tIn := tNext
			if iv.Lo+1 > tIn {
				tIn = iv.Lo + 1
			}
			if tIn == iv.Lo+1 && tIn == f && iv.BlockedExits.Has(directionBit(-d[0], -d[1])) {
				tIn++
			}
			if tIn > f || tIn >= iv.Hi {
				continue
			}
			out = append(out, Transition{Cell: obstacle.Cell{I: di, J: dj}, T: tIn})
		}
	}

	return out, nil
}
