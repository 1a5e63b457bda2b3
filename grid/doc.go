// Package grid represents the static, purely-traversable/blocked 2D grid
// that underlies every search in this module.
//
// What:
//
//   - Grid wraps a rectangular [][]bool (true = traversable) and is
//     immutable once built.
//   - InBounds/Traversable answer O(1) membership questions.
//   - Neighbours enumerates the at-most-four cardinally-adjacent
//     traversable, in-bound cells of (i, j). There is no diagonal motion:
//     this grid is 4-connected only.
//
// Why:
//
//   - Every search package (astar, sipp, wsipp, wsippd) needs the same
//     static obstacle map; centralising it avoids four copies of
//     bounds-checking and neighbour enumeration.
//
// Complexity:
//
//   - New: O(W×H) time and memory (deep copy for immutability).
//   - InBounds / Traversable: O(1).
//   - Neighbours: O(1) (at most 4 candidates).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
