package pathrecon

import "github.com/MONICgh/sipp-go/obstacle"

// Node is the contract a search algorithm's own node type must satisfy to
// be reconstructed.
type Node interface {
	Cell() obstacle.Cell
	G() int
	Parent() (Node, bool)
}

// Step is one immutable (cell, time) pair in a densified path.
type Step struct {
	Cell obstacle.Cell
	G    int
}

// Reconstruct walks goal's parent chain back to the start node and
// returns one Step per timestep from 0 to goal.G() inclusive, synthesizing
// an explicit wait Step for every timestep a search node's arrival time
// jumped ahead of its parent's by more than one.
//
// Reconstruct assumes the start node (the one Parent reports ok=false
// for) has G() == 0, which every search package in this module
// guarantees.
func Reconstruct(goal Node) []Step {
	if goal == nil {
		return nil
	}

	steps := make([]Step, goal.G()+1)
	cur := goal
	for {
		steps[cur.G()] = Step{Cell: cur.Cell(), G: cur.G()}

		parent, ok := cur.Parent()
		if !ok {
			break
		}
		for g := cur.G() - 1; g > parent.G(); g-- {
			steps[g] = Step{Cell: parent.Cell(), G: g}
		}
		cur = parent
	}

	return steps
}
