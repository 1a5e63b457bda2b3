// Package sipp implements Safe-Interval Path Planning (C7): A* search over
// (cell, safe-interval) nodes instead of (cell, timestep) nodes, so a
// single node stands in for an entire contiguous span of otherwise
// identical timesteps.
//
// What:
//
//   - Node identifies a search state by (cell, interval index), per
//     sipp.py's Node.__eq__/__hash__.
//   - Search runs plain A* without re-expansion (search.NoReexpand) driven
//     by a safemap.SafeMap instead of a catable.CATable: successors come
//     from SafeMap.Neighbours, which already folds "wait then move" into
//     a single transition per reachable neighbour interval.
//
// Why:
//
//   - Because SafeMap.Neighbours only ever proposes the earliest-useful
//     arrival at each neighbouring interval, SIPP never explores two
//     nodes at the same cell that fall inside the same safe interval —
//     unlike astar, whose node count scales with the horizon.
//
// Complexity:
//
//   - O(b·k log(b·k)) where k is the total interval count across the
//     grid and b ≤ 4 is the branching factor; independent of the
//     planning horizon.
//
// Errors:
//
//   - ErrInvalidStart: start cell is not traversable at t=0, ported from
//     sipp.py's own precondition check. The goal cell is not separately
//     validated — like the original, an unreachable goal simply surfaces
//     as Result.Found == false once OPEN is exhausted.
//   - ErrNoPathFound: returned by Result.Path when Result.Found is false.
package sipp
