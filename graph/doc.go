// Package graph implements the freeform traversable structure: an
// unordered collection of positioned nodes plus explicit undirected,
// uniquely-paired edges.
//
// Unlike the grid, cost rides on edges (default 1), and edges carry their
// own core.State tag used purely to render search progress; edge state is
// never an algorithmic input.
//
// Node IDs are generated sequentially ("n1", "n2", ...) so traversal
// traces stay reproducible across runs. Graph implements core.Structure
// and core.EdgeMarker; Neighbors enumerates in edge-insertion order.
package graph
