// Package heuristic provides the admissible distance estimates consumed by
// every search package in this module.
//
// What:
//
//   - Func is the shared signature every search algorithm accepts.
//   - Manhattan implements the one heuristic this grid's 4-connected,
//     unit-cost motion model needs: L1 distance, which is admissible and
//     consistent for cardinal-only movement.
//
// Why:
//
//   - astar, sipp, wsipp, wsippd and arsipp all take a heuristic.Func
//     rather than hard-coding Manhattan, so a caller benchmarking a
//     different admissible estimate does not need to touch the search
//     packages themselves.
//
// Complexity:
//
//   - Manhattan: O(1).
package heuristic
