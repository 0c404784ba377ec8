package graph

import (
	"fmt"

	"github.com/pdramos/pathviz/core"
)

// Graph is the freeform node-and-edge structure. Nodes and edges preserve
// insertion order for deterministic enumeration; lookup maps back them for
// O(1) access.
type Graph struct {
	nextID int
	nodes  []*Node
	byID   map[string]*Node
	edges  []*Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nextID: 1,
		byID:   make(map[string]*Node),
	}
}

// CanPlace reports whether a new node at (x, y) would keep clear of every
// existing node by at least 2*NodeRadius. This is the caller-side guard the
// editing layer consults before AddNode; AddNode itself does not re-check.
// Complexity: O(n).
func (g *Graph) CanPlace(x, y float64) bool {
	const minDist = 2 * NodeRadius
	for _, n := range g.nodes {
		dx, dy := n.X-x, n.Y-y
		if dx*dx+dy*dy < minDist*minDist {
			return false
		}
	}

	return true
}

// AddNode creates an Activated node at (x, y) with the next sequential ID
// and returns it.
func (g *Graph) AddNode(x, y float64) *Node {
	n := &Node{
		ID:    fmt.Sprintf("n%d", g.nextID),
		X:     x,
		Y:     y,
		State: core.Activated,
	}
	g.nextID++
	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n

	return n
}

// Node returns the node named by id, if present.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]

	return n, ok
}

// NodeAt hit-tests the point (x, y) against every node circle and returns
// the first match in insertion order.
func (g *Graph) NodeAt(x, y float64) (*Node, bool) {
	for _, n := range g.nodes {
		if n.Contains(x, y) {
			return n, true
		}
	}

	return nil, false
}

// RemoveNode deletes the node named by id together with every edge touching
// it. Removing an absent node is a no-op.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.byID[id]; !ok {
		return
	}
	delete(g.byID, id)
	for i, n := range g.nodes {
		if n.ID == id {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.A != id && e.B != id {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// AddEdge connects a and b with an undirected edge of the given cost.
// Silently a no-op when a == b, when either node is absent, or when an edge
// between the pair already exists (no multigraph). Costs below 1 are
// normalized to DefaultEdgeCost.
func (g *Graph) AddEdge(a, b string, cost int) {
	if a == b {
		return
	}
	if _, ok := g.byID[a]; !ok {
		return
	}
	if _, ok := g.byID[b]; !ok {
		return
	}
	if _, ok := g.edge(a, b); ok {
		return
	}
	if cost < 1 {
		cost = DefaultEdgeCost
	}
	g.edges = append(g.edges, &Edge{A: a, B: b, Cost: cost, State: core.Activated})
}

// RemoveEdge deletes the edge between a and b.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(a, b string) error {
	for i, e := range g.edges {
		if e.Connects(a, b) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
}

// edge locates the unique edge joining a and b.
func (g *Graph) edge(a, b string) (*Edge, bool) {
	for _, e := range g.edges {
		if e.Connects(a, b) {
			return e, true
		}
	}

	return nil, false
}

// Edge returns the edge between a and b, if present. Read access for
// rendering callers.
func (g *Graph) Edge(a, b string) (*Edge, bool) {
	return g.edge(a, b)
}

// Nodes returns the nodes in insertion order. The slice is shared; callers
// treat it as read-only.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the edges in insertion order. The slice is shared; callers
// treat it as read-only.
func (g *Graph) Edges() []*Edge { return g.edges }

// Neighbors enumerates every node connected to id by an edge, in
// edge-insertion order. Returns ErrNodeNotFound for an absent node.
// Implements core.Structure.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if _, ok := g.byID[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	var out []string
	for _, e := range g.edges {
		switch id {
		case e.A:
			out = append(out, e.B)
		case e.B:
			out = append(out, e.A)
		}
	}

	return out, nil
}

// MovementCost reports the cost stored on the edge between from and to.
// Returns ErrEdgeNotFound when the pair is not connected.
// Implements core.Structure.
func (g *Graph) MovementCost(from, to string) (int, error) {
	e, ok := g.edge(from, to)
	if !ok {
		return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, from, to)
	}

	return e.Cost, nil
}

// StateOf returns the state tag of the node named by id.
// Implements core.Structure.
func (g *Graph) StateOf(id string) (core.State, error) {
	n, ok := g.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.State, nil
}

// SetState overwrites the node's state, enforcing the Start/Goal uniqueness
// invariant exactly as the grid does: promotion demotes the previous holder
// to Activated, and a plain Activated request against the current Start
// node is a no-op.
// Implements core.Structure.
func (g *Graph) SetState(id string, s core.State) error {
	if !s.Valid() {
		return core.ErrInvalidState
	}
	n, ok := g.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	switch {
	case s.IsStart():
		if prev, found := g.findState(core.Start); found {
			prev.State = core.Activated
		}
		n.State = core.Start
	case s.IsGoal():
		if prev, found := g.findState(core.Goal); found {
			prev.State = core.Activated
		}
		n.State = core.Goal
	case s.IsActivated() && n.State.IsStart():
		// Plain activation may not self-demote the origin.
	default:
		n.State = s
	}

	return nil
}

// findState scans insertion order for the first node holding state s.
func (g *Graph) findState(s core.State) (*Node, bool) {
	for _, n := range g.nodes {
		if n.State == s {
			return n, true
		}
	}

	return nil, false
}

// Start returns the ID of the unique Start node, if present.
// Implements core.Structure.
func (g *Graph) Start() (string, bool) {
	if n, ok := g.findState(core.Start); ok {
		return n.ID, true
	}

	return "", false
}

// Goal returns the ID of the unique Goal node, if present.
// Implements core.Structure.
func (g *Graph) Goal() (string, bool) {
	if n, ok := g.findState(core.Goal); ok {
		return n.ID, true
	}

	return "", false
}

// Position reports the 2D position of the node named by id. Feeds the
// Euclidean heuristic in package search.
func (g *Graph) Position(id string) (x, y float64, ok bool) {
	n, found := g.byID[id]
	if !found {
		return 0, 0, false
	}

	return n.X, n.Y, true
}

// MarkEdge paints state s onto the edge between a and b. Best-effort: an
// absent edge or an invalid tag is silently ignored, since edge state only
// feeds rendering.
// Implements core.EdgeMarker.
func (g *Graph) MarkEdge(a, b string, s core.State) {
	if !s.Valid() {
		return
	}
	if e, ok := g.edge(a, b); ok {
		e.State = s
	}
}
