package gridgraph

import "github.com/MONICgh/sipp-go/grid"

// FromGrid computes the connected components of g's free cells under
// 4-directional adjacency and returns a Graph that can answer
// SameComponent queries in O(1).
//
// Complexity: O(W×H) time and memory.
func FromGrid(g *grid.Grid) *Graph {
	componentOf := make([][]int, g.Height)
	for i := range componentOf {
		componentOf[i] = make([]int, g.Width)
		for j := range componentOf[i] {
			componentOf[i][j] = -1
		}
	}

	next := 0
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			if !g.Traversable(i, j) || componentOf[i][j] != -1 {
				continue
			}
			floodFill(g, componentOf, i, j, next)
			next++
		}
	}

	return &Graph{width: g.Width, height: g.Height, componentOf: componentOf, components: next}
}

func floodFill(g *grid.Grid, componentOf [][]int, startI, startJ, id int) {
	queue := [][2]int{{startI, startJ}}
	componentOf[startI][startJ] = id

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range offsets {
			ni, nj := cur[0]+d[0], cur[1]+d[1]
			if !g.Traversable(ni, nj) || componentOf[ni][nj] != -1 {
				continue
			}
			componentOf[ni][nj] = id
			queue = append(queue, [2]int{ni, nj})
		}
	}
}

// ComponentCount returns how many distinct connected regions of free
// cells this Graph found.
func (gg *Graph) ComponentCount() int { return gg.components }

// SameComponent reports whether a and b are both in bounds, both
// traversable, and reachable from one another through free cells alone
// (ignoring time and dynamic obstacles entirely). A false result proves
// no time-respecting path can exist either; a true result is only a
// necessary, not sufficient, condition.
func (gg *Graph) SameComponent(ai, aj, bi, bj int) (bool, error) {
	ca, ok := gg.componentAt(ai, aj)
	if !ok {
		return false, ErrOutOfBounds
	}
	cb, ok := gg.componentAt(bi, bj)
	if !ok {
		return false, ErrOutOfBounds
	}

	return ca >= 0 && ca == cb, nil
}

func (gg *Graph) componentAt(i, j int) (int, bool) {
	if i < 0 || i >= gg.height || j < 0 || j >= gg.width {
		return 0, false
	}

	return gg.componentOf[i][j], true
}
