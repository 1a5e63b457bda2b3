package astar

import (
	"github.com/MONICgh/sipp-go/catable"
	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
	"github.com/MONICgh/sipp-go/search"
)

// horizonFactor bounds how many timesteps past the grid's own cell count
// Search will explore before giving up. An always-available wait action
// combined with an unreachable goal would otherwise let OPEN grow forever;
// this cap makes that case terminate with Found=false instead, the same
// outcome as if OPEN had emptied.
const horizonFactor = 4

// Result bundles the outcome of a Search call, matching the
// (path_found, last_node, steps, nodes_created, open, expanded) tuple
// astar_timesteps.py returns.
type Result struct {
	Found        bool
	Goal         *Node
	Steps        int
	NodesCreated int
	Open         []*Node
	Closed       []*Node
}

// Path reconstructs the full path from start to goal via pathrecon. Since
// g already advances in unit steps for this baseline, reconstruction
// degenerates to a straight parent-chain walk with no densification.
func (r Result) Path() ([]pathrecon.Step, error) {
	if !r.Found || r.Goal == nil {
		return nil, ErrNoPathFound
	}

	return pathrecon.Reconstruct(r.Goal), nil
}

// Search runs space-time A* with no re-expansion from start to goal,
// avoiding every dynamic obstacle recorded in ca.
func Search(g *grid.Grid, ca *catable.CATable, start, goal obstacle.Cell, h heuristic.Func) (Result, error) {
	if !g.Traversable(start.I, start.J) {
		return Result{}, ErrInvalidStart
	}
	if !g.Traversable(goal.I, goal.J) {
		return Result{}, ErrInvalidGoal
	}

	frontier := search.New[nodeKey, *Node](search.NoReexpand)
	maxG := (g.Width*g.Height + 1) * horizonFactor

	startNode := NewNode(start, 0, h(start, goal), nil)
	frontier.Push(startNode)
	nodesCreated := 1
	steps := 0

	for {
		node, ok := frontier.Pop()
		if !ok {
			return Result{
				Found:        false,
				Steps:        steps,
				NodesCreated: nodesCreated,
				Open:         frontier.OpenSnapshot(),
				Closed:       frontier.ClosedSnapshot(),
			}, nil
		}
		steps++

		if node.Cell() == goal {
			return Result{
				Found:        true,
				Goal:         node,
				Steps:        steps,
				NodesCreated: nodesCreated,
				Open:         frontier.OpenSnapshot(),
				Closed:       frontier.ClosedSnapshot(),
			}, nil
		}
		if node.G() >= maxG {
			continue
		}

		for _, succ := range candidateMoves(g, node.Cell()) {
			if !ca.MoveValid(node.Cell().I, node.Cell().J, succ.I, succ.J, node.G()) {
				continue
			}
			next := NewNode(succ, node.G()+1, h(succ, goal), node)
			nodesCreated++
			frontier.Push(next)
		}
	}
}

// candidateMoves returns the ≤4 cardinal neighbours of cell plus the
// implicit wait-in-place move, mirroring get_neighbors_wrt_time before the
// CATable filter is applied.
func candidateMoves(g *grid.Grid, cell obstacle.Cell) []obstacle.Cell {
	nbrs := g.Neighbours(cell.I, cell.J)
	moves := make([]obstacle.Cell, 0, len(nbrs)+1)
	moves = append(moves, nbrs...)
	moves = append(moves, cell)

	return moves
}
