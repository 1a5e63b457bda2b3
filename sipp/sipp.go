package sipp

import (
	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
	"github.com/MONICgh/sipp-go/safemap"
	"github.com/MONICgh/sipp-go/search"
)

// Result bundles the outcome of a Search call, matching the
// (path_found, last_node, steps, nodes_created, open, expanded) tuple
// sipp.py returns.
type Result struct {
	Found        bool
	Goal         *Node
	Steps        int
	NodesCreated int
	Open         []*Node
	Closed       []*Node
}

// Path reconstructs the full, densified path from start to goal.
func (r Result) Path() ([]pathrecon.Step, error) {
	if !r.Found || r.Goal == nil {
		return nil, ErrNoPathFound
	}

	return pathrecon.Reconstruct(r.Goal), nil
}

// Search runs Safe-Interval Path Planning from start to goal over m.
func Search(m *safemap.SafeMap, start, goal obstacle.Cell, h heuristic.Func) (Result, error) {
	if !m.Traversable(start.I, start.J, 0) {
		return Result{}, ErrInvalidStart
	}

	startIdx := m.GetInterval(start.I, start.J, 0)
	frontier := search.New[nodeKey, *Node](search.NoReexpand)
	frontier.Push(NewNode(start, 0, h(start, goal), startIdx, nil))
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

		transitions, err := m.Neighbours(node.Cell().I, node.Cell().J, node.G())
		if err != nil {
			// A node's own (cell, g) always lies inside the interval it was
			// created in; SafeMap.Neighbours rejecting it would mean Search
			// itself built an inconsistent node, which is a programming
			// error in this package, not a caller input problem.
			panic(err)
		}

		for _, tr := range transitions {
			idx := m.GetInterval(tr.Cell.I, tr.Cell.J, tr.T)
			next := NewNode(tr.Cell, tr.T, h(tr.Cell, goal), idx, node)
			nodesCreated++
			frontier.Push(next)
		}
	}
}
