// Package pathviz is a stepwise graph-search toolkit: traversable grids
// and freeform graphs, five search variants driven one expansion at a
// time, and the supporting pieces an interactive visualizer needs.
//
// What is pathviz?
//
//	A small, focused library that brings together:
//		• Core primitives: the State lifecycle and the Structure contract
//		• Grid worlds: bounded 2D boards with per-cell movement costs
//		• Freeform graphs: positioned nodes, weighted undirected edges
//		• Searches: BFS, DFS, Dijkstra, A*, Greedy Best-First
//		• Maze carving: randomized Prim over the grid lattice
//		• Cost maps: a plain-text format for per-cell cost matrices
//
// Why stepwise?
//
//   - One Step() call performs exactly one expansion, so a caller can
//     interleave rendering, input handling, or instrumentation between
//     frames without threads or channels
//   - Hooks (OnEnqueue, OnDequeue) expose frontier traffic for custom logic
//   - Every variant is deterministic under a fixed neighbor order and seed
//
// Everything is organized under flat subpackages:
//
//	core/    — State enum and the Structure / EdgeMarker interfaces
//	grid/    — 2D cell board implementing Structure
//	graph/   — freeform node/edge graph implementing Structure
//	search/  — the Engine, its frontier strategies and heuristics
//	maze/    — randomized-Prim carver for grids
//	costmap/ — cost matrix text codec and random generation
//
// Quick ASCII example:
//
//	S o . #
//	- o . #
//	- - * G
//
//	a 3x4 grid mid-search: S start, G goal, o frontier, - visited,
//	* path, # wall.
//
//	go get github.com/pdramos/pathviz
package pathviz
