// Package catable implements the Collision-Avoidance Table: a dense
// (cell, time) → obstacle-id lookup used by the astar package's
// space-time baseline search.
//
// What:
//
//   - CATable records every (row, col, t) occupied by any dynamic
//     obstacle's trajectory.
//   - CellFree answers whether a given cell is unoccupied at a given time.
//   - MoveValid answers whether an agent may move (or wait) between two
//     time-adjacent cells without colliding with, or swapping positions
//     with, a dynamic obstacle.
//
// Why:
//
//   - astar.Search needs a fast collision check that does not require
//     scanning every trajectory at every expansion; CATable flattens all
//     trajectories into one lookup up front.
//
// Complexity:
//
//   - New: O(sum of trajectory lengths) time and memory.
//   - CellFree / MoveValid: O(1).
package catable
