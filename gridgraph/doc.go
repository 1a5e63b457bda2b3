// Package gridgraph answers one question cheaply before a search
// package spends any effort on it: are two cells on the same grid even
// in the same connected region of free space?
//
// What:
//
//   - FromGrid wraps a *grid.Grid and computes its connected components
//     of traversable (free) cells under 4-directional adjacency.
//   - SameComponent reports whether two cells belong to the same
//     component, i.e. whether any static path between them can possibly
//     exist at all, ignoring time.
//
// Why:
//
//   - sipp/wsipp/wsippd/astar all have to exhaust their frontier before
//     concluding a goal is unreachable. A disconnected start/goal pair is
//     the single most common reason a search finds nothing; checking it
//     up front in O(W×H) turns a full search's worth of wasted work into
//     one BFS pass. cmd/sippcli runs this check before invoking any
//     search algorithm.
//
// Complexity:
//
//   - FromGrid: O(W×H) time and memory. SameComponent: O(1) after that.
//
// Errors:
//
//   - ErrOutOfBounds: a queried cell lies outside the grid.
package gridgraph
