// Package sippgo is a library for single-agent path planning around
// known dynamic obstacles on a 2D grid.
//
// 🚀 What is sipp-go?
//
//	A small, focused toolkit built around Safe-Interval Path Planning:
//
//	  • Core primitives  — grid occupancy, obstacle trajectories, collision tables
//	  • Safe intervals    — per-cell disjoint time windows a cell stays free
//	  • Search algorithms — A* over timesteps, SIPP, Weighted SIPP,
//	    WSIPP-D, and an anytime-repairing SIPP iterator
//
// ✨ Why SIPP?
//
//   - Fast              — collapses a cell's infinite future into a handful
//     of safe intervals instead of expanding one state per timestep
//   - Optimal by default — plain SIPP never re-expands a closed interval
//     and still finds the shortest time-respecting path
//   - Tunable            — WSIPP/WSIPP-D/ARSIPP trade optimality for speed
//     by inflating the heuristic; WSIPP and ARSIPP pay for it with
//     re-expansion, while WSIPP-D never re-expands a closed node
//
// Everything is organized by concern, one package per algorithmic layer:
//
//	grid/       — static occupancy grid (free/blocked cells)
//	obstacle/   — dynamic obstacle trajectories and the Cell type
//	catable/    — dense (cell, time) -> obstacle collision table, for astar
//	safemap/    — per-cell safe-interval decomposition, for the SIPP family
//	heuristic/  — admissible heuristics (Manhattan distance)
//	search/     — a generic priority-queue frontier shared by every algorithm
//	astar/      — A* over discrete timesteps (the non-SIPP baseline)
//	sipp/       — Safe-Interval Path Planning, no re-expansion
//	wsipp/      — Weighted SIPP, inflated heuristic with re-expansion
//	wsippd/     — WSIPP-D, dual optimal/inflated queues
//	arsipp/     — Naive Anytime-Repairing SIPP, a weight-decreasing iterator
//	pathrecon/  — shared path reconstruction, with synthesized wait steps
//	mapio/      — .map/.scen benchmark file parsing
//	cmd/sippcli — a CLI wiring every algorithm together end to end
//
// Dive into DESIGN.md for the rationale behind each package and its
// dependency choices.
package sippgo
