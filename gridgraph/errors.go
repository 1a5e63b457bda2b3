package gridgraph

import "errors"

var (
	// ErrOutOfBounds indicates a queried cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell is out of bounds")
)
