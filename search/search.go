package search

import (
	"fmt"

	"github.com/pdramos/pathviz/core"
)

// Engine drives one stepwise search over a bound structure.
//
// Algorithmic bookkeeping (visited, parent, bestCost) lives in the engine,
// independent of the paint-state the structure carries for rendering; the
// two channels agree by construction but the engine never reads colors
// back to make decisions.
type Engine struct {
	s       core.Structure
	marker  core.EdgeMarker // nil when the structure has no explicit edges
	variant Variant
	opts    Options

	frontier   frontier
	visited    map[string]struct{}
	parent     map[string]string
	bestCost   map[string]int
	goal       string
	found      bool
	expansions int
	path       []string
}

// New constructs an engine bound to s and immediately resets it from the
// structure's current Start node.
//
// Returns ErrNilStructure, ErrBadVariant, or ErrMissingHeuristic when an
// informed variant (A*, greedy best-first) is built without WithHeuristic.
func New(s core.Structure, v Variant, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadVariant, int(v))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Neighbors == nil {
		o.Neighbors = s.Neighbors
	}
	if o.Cost == nil {
		o.Cost = s.MovementCost
	}
	if v.informed() && o.Heuristic == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeuristic, v)
	}

	e := &Engine{
		s:       s,
		variant: v,
		opts:    o,
	}
	if m, ok := s.(core.EdgeMarker); ok {
		e.marker = m
	}
	e.Reset()

	return e, nil
}

// Variant returns the algorithm variant the engine was built with.
func (e *Engine) Variant() Variant { return e.variant }

// Found reports whether the goal has been reached.
func (e *Engine) Found() bool { return e.found }

// Expansions returns the number of Step calls that dequeued a node.
func (e *Engine) Expansions() int { return e.expansions }

// Path returns the start-to-goal node IDs recorded by HighlightPath,
// or nil before a successful highlight.
func (e *Engine) Path() []string { return e.path }

// Reset reinitializes all search state from the structure's current Start
// node. When either Start or Goal is absent the frontier stays empty and
// every Step returns false: a well-defined "nothing to do" terminal state,
// not an error.
func (e *Engine) Reset() {
	e.frontier = newFrontier(e.variant)
	e.visited = make(map[string]struct{})
	e.parent = make(map[string]string)
	e.bestCost = make(map[string]int)
	e.found = false
	e.expansions = 0
	e.path = nil
	e.goal = ""

	start, okStart := e.s.Start()
	goal, okGoal := e.s.Goal()
	if !okStart || !okGoal {
		return
	}
	e.goal = goal

	// Seed: the start node is visited with no parent entry.
	e.visited[start] = struct{}{}
	e.bestCost[start] = 0
	e.frontier.push(start, e.priority(start, 0))
}

// priority computes the frontier key for a node with accumulated cost g.
// BFS/DFS ignore it; Dijkstra orders by g, A* by g+h, greedy by h alone.
func (e *Engine) priority(id string, g int) float64 {
	switch e.variant {
	case Dijkstra:
		return float64(g)
	case AStar:
		return float64(g) + e.opts.Heuristic(id, e.goal)
	case Greedy:
		return e.opts.Heuristic(id, e.goal)
	default:
		return 0
	}
}

// Step performs one bounded unit of work: dequeue a single node and offer
// its neighbors to the frontier. Returns true while more work remains;
// false once the frontier is exhausted or the goal was found on a previous
// step. Callers invoke it once per frame, drawing in between.
func (e *Engine) Step() bool {
	if e.found || e.frontier.size() == 0 {
		return false
	}

	id, _ := e.frontier.pop()
	e.expansions++
	e.opts.OnDequeue(id)
	e.markNode(id, core.Visited)
	if p, ok := e.parent[id]; ok {
		e.markEdge(p, id, core.Visited)
	}

	neighbors, err := e.opts.Neighbors(id)
	if err != nil {
		// Popped IDs always originate from the structure; a failing
		// enumeration means the structure changed mid-search, which
		// the usage contract forbids. Treat as no neighbors.
		neighbors = nil
	}
	for _, nid := range neighbors {
		st, serr := e.s.StateOf(nid)
		if serr != nil || !st.Traversable() {
			continue
		}
		if e.variant.costAware() {
			e.relax(id, nid, st)
			continue
		}
		e.offer(id, nid, st)
	}

	return true
}

// offer enqueues a neighbor under the visited-once guard used by the
// uninformed variants and greedy best-first.
func (e *Engine) offer(from, nid string, st core.State) {
	if _, seen := e.visited[nid]; seen {
		return
	}
	e.visited[nid] = struct{}{}
	e.parent[nid] = from
	e.frontier.push(nid, e.priority(nid, 0))
	e.admit(from, nid, st)
}

// relax applies the strict-improvement rule of the cost-aware variants:
// a neighbor is (re-)enqueued whenever a cheaper accumulated cost than any
// previously recorded best is found, even if it was enqueued before.
func (e *Engine) relax(from, nid string, st core.State) {
	stepCost, err := e.opts.Cost(from, nid)
	if err != nil {
		// No usable transition (e.g. a graph pair with no edge when a
		// custom neighbor function over-approximates adjacency).
		return
	}
	newCost := e.bestCost[from] + stepCost
	if old, ok := e.bestCost[nid]; ok && newCost >= old {
		return
	}
	e.bestCost[nid] = newCost
	e.parent[nid] = from
	e.visited[nid] = struct{}{}
	e.frontier.push(nid, e.priority(nid, newCost))
	e.admit(from, nid, st)
}

// admit finishes an enqueue: flags goal discovery (without cutting the
// current neighbor scan short), paints the frontier, and fires the hook.
func (e *Engine) admit(from, nid string, st core.State) {
	if st.IsGoal() {
		e.found = true
	} else {
		e.markNode(nid, core.Frontier)
		e.markEdge(from, nid, core.Frontier)
	}
	e.opts.OnEnqueue(nid)
}

// markNode paints a node state, preserving the Start and Goal tags.
func (e *Engine) markNode(id string, s core.State) {
	st, err := e.s.StateOf(id)
	if err != nil || st.IsStart() || st.IsGoal() {
		return
	}
	_ = e.s.SetState(id, s)
}

// markEdge paints an edge state when the structure supports edges.
func (e *Engine) markEdge(a, b string, s core.State) {
	if e.marker != nil {
		e.marker.MarkEdge(a, b, s)
	}
}

// HighlightPath walks the parent chain backwards from the Goal node,
// painting every intermediate node (and, on graphs, edge) Path while the
// Start and Goal tags stay untouched, and records the start-to-goal route
// retrievable via Path.
//
// Calling it before the goal was found, or with no Goal present, is an
// explicit no-op: there is no path to trace and no state is touched.
func (e *Engine) HighlightPath() {
	if !e.found {
		return
	}
	goal, ok := e.s.Goal()
	if !ok {
		return
	}

	var chain []string
	node := goal
	for {
		chain = append(chain, node)
		e.markNode(node, core.Path)
		next, more := e.parent[node]
		if !more {
			break
		}
		e.markEdge(next, node, core.Path)
		node = next
	}

	// The chain was walked goal-to-start; expose it start-to-goal.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	e.path = chain
}
