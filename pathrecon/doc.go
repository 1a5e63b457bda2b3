// Package pathrecon reconstructs a dense, timestep-by-timestep path from a
// search goal node's parent chain (C11).
//
// What:
//
//   - Node is the minimal contract any algorithm's concrete node type
//     must satisfy to be reconstructed: its cell, its arrival time, and
//     an optional parent.
//   - Reconstruct walks that chain from goal back to start and returns
//     one Step per timestep, including every intermediate wait.
//
// Why:
//
//   - Every SIPP-family node only records the instant it departs an
//     interval, not every timestep it spent waiting inside one; a caller
//     wanting an actual trajectory to execute or animate needs every
//     intervening instant filled in.
//
// Design note:
//
//   - The original source's make_path re-appends the same parent node
//     object once per waited timestep, so every synthesized wait entry
//     reports the parent's own arrival time instead of the timestep it
//     actually represents. Reconstruct instead synthesizes a distinct,
//     correctly-numbered Step for each waited timestep, fixing that
//     without changing the reconstructed path's cells or length.
//
// Complexity:
//
//   - O(goal.G()) time and O(goal.G()) memory: one Step per timestep from
//     start to goal, independent of how many search nodes were actually
//     created.
package pathrecon
