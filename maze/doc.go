// Package maze carves perfect mazes into a grid using randomized Prim's
// algorithm.
//
// Generation walls every cell, activates a random seed cell at even
// coordinates, then repeatedly picks a random pending wall candidate and
// carves a two-cell passage whenever the far side is still wall. The
// result is a spanning tree over the carved cells: fully connected, no
// cycles, by construction rather than post-hoc verification.
//
// The every-other-cell carving pattern assumes odd grid dimensions. Even
// dimensions are accepted but unspecified beyond two guarantees: carving
// stays in bounds, and the carved cells still form a spanning tree; the
// trailing row or column simply remains wall.
package maze
