package grid

import "github.com/MONICgh/sipp-go/obstacle"

// Cell is an alias for obstacle.Cell so every package that talks about
// grid positions shares one type.
type Cell = obstacle.Cell

// offsets enumerates the four cardinal neighbour deltas in a fixed order.
// Algorithms must not rely on this order for correctness (§4.1); it exists
// only so that neighbour lists are deterministic across runs, which tests
// rely on.
var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable 2D occupancy map: free[i][j] is true iff cell (i,j)
// is traversable by the agent.
type Grid struct {
	Width, Height int
	free          [][]bool
}

// New constructs a Grid from a non-empty, rectangular 2D slice of
// traversability flags. It deep-copies the input so later mutation of the
// caller's slice cannot affect the Grid.
//
// Returns ErrEmptyGrid if free has no rows or no columns, ErrNonRectangular
// if any row length differs from the first.
//
// Complexity: O(W×H) time and memory.
func New(free [][]bool) (*Grid, error) {
	if len(free) == 0 || len(free[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(free), len(free[0])
	for _, row := range free {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]bool, h)
	for i := 0; i < h; i++ {
		cells[i] = make([]bool, w)
		copy(cells[i], free[i])
	}

	return &Grid{Width: w, Height: h, free: cells}, nil
}

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Height && j >= 0 && j < g.Width
}

// Traversable reports whether (i,j) is both in bounds and free of a static
// obstacle. Out-of-bounds queries return false rather than panicking.
// Complexity: O(1).
func (g *Grid) Traversable(i, j int) bool {
	return g.InBounds(i, j) && g.free[i][j]
}

// Neighbours returns the at-most-four cardinally-adjacent, in-bound,
// traversable cells of (i,j). No diagonal motion is ever considered.
// Complexity: O(1).
func (g *Grid) Neighbours(i, j int) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range offsets {
		ni, nj := i+d[0], j+d[1]
		if g.Traversable(ni, nj) {
			out = append(out, Cell{I: ni, J: nj})
		}
	}

	return out
}
