// Package safemap builds and queries the safe-interval decomposition of a
// static grid under a fixed set of known dynamic-obstacle trajectories.
//
// What:
//
//   - Build walks every obstacle trajectory once and, per traversable
//     cell, partitions time into maximal disjoint "safe intervals" of
//     continuous obstacle-freedom, each carrying the set of directions
//     from which an obstacle entered the cell at the interval's lower
//     boundary (used to detect edge/swap collisions).
//   - GetInterval/Traversable answer point queries against that
//     decomposition.
//   - Neighbours is the single most subtle algorithm in this module: for
//     a (cell, time) pair known to lie strictly inside a safe interval,
//     it enumerates every cardinal neighbour transition an agent could
//     take — including an implicit wait — whose earliest arrival avoids
//     both cell occupancy and edge (swap) collisions.
//
// Why:
//
//   - SIPP-family searches (sipp, wsipp, wsippd) expand over
//     (cell, interval) nodes rather than (cell, absolute-time) nodes;
//     SafeMap is what makes one interval stand in for a whole contiguous
//     span of otherwise-identical timesteps, collapsing a search whose
//     state space would otherwise grow with the planning horizon.
//
// Complexity:
//
//   - Build: O(sum of trajectory lengths × log) time, O(W×H + that sum)
//     memory.
//   - GetInterval: O(log k) where k is the interval count of one cell.
//   - Traversable: O(log k).
//   - Neighbours: O(d × k) where d ≤ 4 and k is the neighbour's interval
//     count spanned by the current interval.
//
// Errors:
//
//   - ErrInconsistentNeighbourState: Neighbours was called on a
//     (i, j, t) not strictly inside any of that cell's safe intervals.
//     Per the design's error-handling policy this is a programmer error:
//     the caller's search loop must only ever call Neighbours with a
//     node's own (cell, g), which by construction always lies inside the
//     interval the node was created in.
package safemap
