package sipp

import (
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
)

// Node is one SIPP search state: an agent arriving at Cell at time G,
// inside the safe interval identified by Interval (an index into the
// SafeMap's per-cell interval list, not an absolute time).
type Node struct {
	cell     obstacle.Cell
	g        int
	h        float64
	interval int
	parent   *Node
}

// NewNode constructs a Node directly, for tests and for Search itself.
func NewNode(cell obstacle.Cell, g int, h float64, interval int, parent *Node) *Node {
	return &Node{cell: cell, g: g, h: h, interval: interval, parent: parent}
}

func (n *Node) Cell() obstacle.Cell { return n.cell }
func (n *Node) G() int              { return n.g }
func (n *Node) H() float64          { return n.h }
func (n *Node) Interval() int       { return n.interval }

func (n *Node) Parent() (pathrecon.Node, bool) {
	if n.parent == nil {
		return nil, false
	}

	return n.parent, true
}

// nodeKey is the search identity of a Node: (cell, interval), per
// sipp.py's Node.__eq__/__hash__.
type nodeKey struct {
	i, j, interval int
}

func (n *Node) Key() nodeKey { return nodeKey{n.cell.I, n.cell.J, n.interval} }

func (n *Node) F() float64 { return float64(n.g) + n.h }
