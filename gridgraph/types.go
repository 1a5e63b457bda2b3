package gridgraph

// offsets enumerates the four cardinal neighbour deltas. Diagonal
// adjacency is out of scope: the search packages this supports a
// precheck for never consider diagonal motion (see SPEC_FULL.md §15).
var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Graph is an immutable connected-components view of a grid.Grid's free
// cells.
type Graph struct {
	width, height int
	componentOf   [][]int // componentOf[i][j] = component index, or -1 if blocked
	components    int
}
