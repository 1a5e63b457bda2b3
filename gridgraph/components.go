package gridgraph

import "github.com/MONICgh/sipp-go/obstacle"

// Components returns every connected component of free cells as a slice
// of its member cells, in component-discovery order.
//
// Complexity: O(W×H) time and memory.
func (gg *Graph) Components() [][]obstacle.Cell {
	out := make([][]obstacle.Cell, gg.components)
	for i := 0; i < gg.height; i++ {
		for j := 0; j < gg.width; j++ {
			id := gg.componentOf[i][j]
			if id < 0 {
				continue
			}
			out[id] = append(out[id], obstacle.Cell{I: i, J: j})
		}
	}

	return out
}
