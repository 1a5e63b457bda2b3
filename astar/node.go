package astar

import (
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
)

// Node is one space-time search state: an agent sitting at Cell at time G,
// with estimated remaining cost H and a backpointer to the node it was
// generated from.
type Node struct {
	cell   obstacle.Cell
	g      int
	h      float64
	parent *Node
}

// NewNode constructs a Node. Exported so tests can build small search
// trees directly without running a full Search.
func NewNode(cell obstacle.Cell, g int, h float64, parent *Node) *Node {
	return &Node{cell: cell, g: g, h: h, parent: parent}
}

// Cell returns the grid cell this node sits at.
func (n *Node) Cell() obstacle.Cell { return n.cell }

// G returns the node's arrival time, which doubles as its path cost since
// every move (including wait) costs exactly one timestep.
func (n *Node) G() int { return n.g }

// H returns the node's heuristic estimate of the remaining cost to goal.
func (n *Node) H() float64 { return n.h }

// Parent returns the node this one was generated from, and whether one
// exists (false for the start node).
func (n *Node) Parent() (pathrecon.Node, bool) {
	if n.parent == nil {
		return nil, false
	}

	return n.parent, true
}

// nodeKey is the search identity of a Node: (cell, g). Unlike the SIPP
// family, a plain timestep is part of identity here since this baseline
// has no safe-interval abstraction to collapse repeated timesteps into.
type nodeKey struct {
	i, j, g int
}

// Key implements search.Node[nodeKey].
func (n *Node) Key() nodeKey { return nodeKey{n.cell.I, n.cell.J, n.g} }

// F implements search.Node[nodeKey]: g+h, Dijkstra-equivalent when h is 0.
func (n *Node) F() float64 { return float64(n.g) + n.h }
