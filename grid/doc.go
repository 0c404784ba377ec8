// Package grid implements the uniform-cell traversable structure: a fixed
// height x width array of cells connected to their four orthogonal
// neighbors by implicit adjacency.
//
// Cells carry a core.State tag and an integer entry cost (default 1).
// Movement cost between adjacent cells is the destination cell's cost,
// optionally loaded from a plain-text cost map (see package costmap).
//
// Grid implements core.Structure with cell IDs formatted "row,col".
// Neighbor enumeration order is fixed to up, down, left, right so search
// traces are reproducible.
package grid
