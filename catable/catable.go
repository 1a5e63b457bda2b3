package catable

import "github.com/MONICgh/sipp-go/obstacle"

// posTime identifies a single (cell, time) occupancy event.
type posTime struct {
	i, j, t int
}

// CATable is a dense mapping from (row, col, t) to the id of the dynamic
// obstacle occupying that cell at that time. It is built once from a fixed
// list of known trajectories and never mutated afterwards.
type CATable struct {
	occupied map[posTime]int // (i,j,t) -> obstacle id
}

// New builds a CATable from a set of fully-known obstacle trajectories.
// Only the recorded time steps of each trajectory are stored: a
// trajectory's final position is occupied at its final index and no
// later, so CellFree reports that cell free at every later t. The table
// does not model an obstacle remaining settled; callers that need that
// must account for settlement themselves.
//
// Complexity: O(sum of trajectory lengths) time and memory.
func New(trajectories []obstacle.Trajectory) *CATable {
	c := &CATable{occupied: make(map[posTime]int)}
	for id, traj := range trajectories {
		for t, cell := range traj {
			c.occupied[posTime{i: cell.I, j: cell.J, t: t}] = id
		}
	}

	return c
}

// CellFree reports whether (i,j) is not occupied by any obstacle at time t.
// Complexity: O(1).
func (c *CATable) CellFree(i, j, t int) bool {
	_, occupied := c.occupied[posTime{i: i, j: j, t: t}]

	return !occupied
}

// MoveValid reports whether the agent may move from (i1,j1) at time t to
// (i2,j2) at time t+1 — or wait in place if (i1,j1) == (i2,j2) — without
// colliding with a dynamic obstacle.
//
// The move is valid iff the destination is free at t+1 AND the move is not
// a reverse-swap: an obstacle must not simultaneously occupy the
// destination at t while moving into the agent's current cell at t+1.
//
// Complexity: O(1).
func (c *CATable) MoveValid(i1, j1, i2, j2, t int) bool {
	if !c.CellFree(i2, j2, t+1) {
		return false
	}

	destOccupiedNow := !c.CellFree(i2, j2, t)
	originOccupiedNext := !c.CellFree(i1, j1, t+1)

	return !(destOccupiedNow && originOccupiedNext)
}
