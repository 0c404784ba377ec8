// Package graph defines node and edge types plus sentinel errors for the
// freeform structure.
package graph

import (
	"errors"

	"github.com/pdramos/pathviz/core"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// NodeRadius is the rendering radius of a node. CanPlace rejects positions
// within 2*NodeRadius of an existing node so drawn nodes never overlap.
const NodeRadius = 20.0

// DefaultEdgeCost is the traversal price of an edge when none is given.
const DefaultEdgeCost = 1

// Node is a freely positioned graph node.
type Node struct {
	ID    string
	X, Y  float64
	State core.State
}

// Contains reports whether the point (x, y) falls inside the node's
// rendered circle. Used for mouse hit-testing by callers.
func (n *Node) Contains(x, y float64) bool {
	dx, dy := n.X-x, n.Y-y

	return dx*dx+dy*dy <= NodeRadius*NodeRadius
}

// Edge is an undirected connection between two distinct nodes, carrying
// its own cost and a state tag for rendering search progress.
type Edge struct {
	A, B  string
	Cost  int
	State core.State
}

// Connects reports whether the edge joins a and b in either orientation.
func (e *Edge) Connects(a, b string) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}
