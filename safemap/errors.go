package safemap

import "errors"

// ErrInconsistentNeighbourState is returned by Neighbours when the queried
// (i, j, t) does not lie strictly inside any safe interval of that cell.
var ErrInconsistentNeighbourState = errors.New("safemap: (i,j,t) is not strictly inside a safe interval")
