// Package obstacle defines the shared position and trajectory value types
// used across the grid, catable, and safemap packages.
//
// A Trajectory is a known, fully-determined future: callers never mutate
// one once it is handed to catable.New or safemap.Build.
package obstacle

// Cell identifies a single grid position by (row, column).
type Cell struct {
	I, J int
}

// Trajectory is an obstacle's position at each integer time step, indexed
// from 0. After the last recorded step the obstacle is considered settled:
// it remains at Trajectory[len-1] forever.
type Trajectory []Cell

// At returns the obstacle's position at the given time step, clamping to
// the final (settled) position for any step at or beyond the trajectory's
// length.
func (t Trajectory) At(step int) Cell {
	if step < 0 {
		step = 0
	}
	if step >= len(t) {
		step = len(t) - 1
	}

	return t[step]
}

// SettledAt returns the time step at which this trajectory comes to rest,
// i.e. the index of its final recorded position.
func (t Trajectory) SettledAt() int {
	return len(t) - 1
}

// Generator produces a benchmark set of dynamic-obstacle trajectories for
// a grid of the given dimensions. It is an external collaborator: this
// module fixes the shape callers plug a generator into (safemap.Build and
// catable.New accept any []Trajectory, generated or hand-authored) but does
// not ship a generator implementation. See original_source's
// generate_dynamic_obstacles_confs for the kind of random-walk-plus-return
// generator a caller might supply.
type Generator func(count, height, width int) []Trajectory
