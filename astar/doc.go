// Package astar implements the space-time A* baseline (C6): search over
// (cell, timestep) pairs against a fixed Collision-Avoidance Table, with no
// re-expansion.
//
// What:
//
//   - Node identifies a search state by (cell, g) — unlike the SIPP family,
//     a plain timestep, not a safe interval, is part of the node's
//     identity, since this baseline has no interval abstraction to
//     collapse repeated timesteps into.
//   - Search runs astar.Node expansion driven by a catable.CATable and a
//     search.Frontier under the NoReexpand policy.
//
// Why:
//
//   - astar is the point of comparison every SIPP variant is benchmarked
//     against: it is correct but explores one search node per (cell,
//     time) pair rather than per (cell, safe-interval), so its node count
//     grows with the planning horizon where SIPP's does not.
//
// Complexity:
//
//   - O(b^d) in the worst case where b ≤ 5 (four cardinal moves plus
//     wait) and d is the horizon needed to reach the goal; unlike sipp,
//     there is no interval compression, so the practical runtime is
//     dominated by how long dynamic obstacles keep blocking direct paths.
//
// Errors:
//
//   - ErrInvalidStart / ErrInvalidGoal: start or goal cell is not
//     traversable in the static grid.
//   - ErrNoPathFound: returned by Result.Path when Result.Found is false.
package astar
