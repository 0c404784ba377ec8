// Package core defines the shared vocabulary of the pathviz module:
// the State tag that drives both rendering and traversal bookkeeping,
// the Structure interface implemented by the grid and graph packages,
// and the optional EdgeMarker upgrade for structures with explicit edges.
//
// A Structure addresses every node by a string ID. The grid package formats
// cells as "row,col"; the graph package issues sequential "n1", "n2", ...
// identifiers. Keeping identity as a plain string lets one search engine
// run unmodified over either structure.
//
// State is a single tag, not a set of flags: a node is exactly one of
// Deactivated, Activated, Start, Goal, Visited, Frontier, or Path at any
// moment. Structures enforce that at most one node holds Start and at most
// one holds Goal.
package core
