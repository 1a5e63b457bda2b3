package wsippd

import (
	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
	"github.com/MONICgh/sipp-go/safemap"
	"github.com/MONICgh/sipp-go/search"
)

// Result bundles the outcome of a Search call.
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

// Search runs WSIPP-D from start to goal over m with inflation w.
func Search(m *safemap.SafeMap, start, goal obstacle.Cell, w float64, h heuristic.Func) (Result, error) {
	if w < 1 {
		return Result{}, ErrWeightBelowOne
	}
	if !m.Traversable(start.I, start.J, 0) {
		return Result{}, ErrInvalidStart
	}

	frontier := search.New[nodeKey, *Node](search.NoReexpand)
	startIdx := m.GetInterval(start.I, start.J, 0)
	frontier.Push(NewNode(start, 0, h(start, goal), w, true, startIdx, nil))
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
			panic(err)
		}

		for _, tr := range transitions {
			idx := m.GetInterval(tr.Cell.I, tr.Cell.J, tr.T)

			inflated := NewNode(tr.Cell, tr.T, h(tr.Cell, goal), w, false, idx, node)
			nodesCreated++
			frontier.Push(inflated)

			if node.IsOptimal() {
				optimal := NewNode(tr.Cell, tr.T, h(tr.Cell, goal), w, true, idx, node)
				nodesCreated++
				frontier.Push(optimal)
			}
		}
	}
}
