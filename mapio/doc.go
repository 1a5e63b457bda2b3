// Package mapio reads the .map/.scen benchmark file formats that feed
// cmd/sippcli, grounded in grid.py's read_from_file.
//
// What:
//
//   - ReadMap parses a .map file ('.' free, any of "@T#" blocked) into
//     the [][]bool a grid.New call expects.
//   - ReadMapLegacy parses the same format but additionally reproduces
//     read_from_file's historical 70-row/70-column clipping.
//   - ReadScenario parses the single "start_i start_j goal_i goal_j"
//     line launch.py reads out of a .map.scen file.
//
// Why:
//
//   - Grid/scenario parsing is explicitly out of the core algorithms'
//     scope; this package exists purely so cmd/sippcli has a real file
//     format to load instead of inventing one.
//
// Complexity:
//
//   - ReadMap/ReadMapLegacy: O(rows×cols). ReadScenario: O(1).
//
// Errors:
//
//   - ErrInvalidMapDimensions: the header's declared height/width could
//     not be parsed, or a data row's length does not match the declared
//     width.
//   - ErrInvalidScenario: the scenario line does not contain exactly
//     four integers.
package mapio
