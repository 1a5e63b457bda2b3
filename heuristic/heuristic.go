package heuristic

import "github.com/MONICgh/sipp-go/obstacle"

// Func estimates the remaining cost from a cell to the goal. Every
// implementation passed to a search package must be admissible (never
// overestimate the true remaining cost) for that search's optimality
// guarantees to hold.
type Func func(from, goal obstacle.Cell) float64

// Manhattan is the L1 distance between from and goal: admissible and
// consistent for 4-connected, unit-cost grid motion.
func Manhattan(from, goal obstacle.Cell) float64 {
	return float64(abs(from.I-goal.I) + abs(from.J-goal.J))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
