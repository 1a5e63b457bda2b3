package wsippd

import (
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
)

// Node is one WSIPP-D search state: an agent arriving at Cell at time G,
// inside the safe interval identified by Interval, tagged as either the
// "optimal" variant (f = w*(g+h)) or the "inflated" variant (f = g+w*h).
type Node struct {
	cell      obstacle.Cell
	g         int
	h         float64
	w         float64
	isOptimal bool
	interval  int
	parent    *Node
}

// NewNode constructs a Node directly, for tests and for Search itself.
func NewNode(cell obstacle.Cell, g int, h, w float64, isOptimal bool, interval int, parent *Node) *Node {
	return &Node{cell: cell, g: g, h: h, w: w, isOptimal: isOptimal, interval: interval, parent: parent}
}

func (n *Node) Cell() obstacle.Cell { return n.cell }
func (n *Node) G() int              { return n.g }
func (n *Node) H() float64          { return n.h }
func (n *Node) Weight() float64     { return n.w }
func (n *Node) IsOptimal() bool     { return n.isOptimal }
func (n *Node) Interval() int       { return n.interval }

func (n *Node) Parent() (pathrecon.Node, bool) {
	if n.parent == nil {
		return nil, false
	}

	return n.parent, true
}

// nodeKey is the search identity of a Node: (cell, interval, isOptimal).
type nodeKey struct {
	i, j, interval int
	isOptimal      bool
}

func (n *Node) Key() nodeKey {
	return nodeKey{n.cell.I, n.cell.J, n.interval, n.isOptimal}
}

// F implements search.Node[nodeKey]: w*(g+h) for the optimal variant,
// g+w*h for the inflated variant.
func (n *Node) F() float64 {
	if n.isOptimal {
		return n.w * (float64(n.g) + n.h)
	}

	return float64(n.g) + n.w*n.h
}
