// Package search defines the Variant enum, sentinel errors, and
// configuration options for the stepwise engine.
package search

import "errors"

// Sentinel errors for engine construction.
var (
	// ErrNilStructure is returned when a nil structure is passed to New.
	ErrNilStructure = errors.New("search: structure is nil")

	// ErrBadVariant is returned for a Variant outside the declared set.
	ErrBadVariant = errors.New("search: unknown algorithm variant")

	// ErrMissingHeuristic is returned when an informed variant (A*,
	// greedy best-first) is constructed without a heuristic.
	ErrMissingHeuristic = errors.New("search: variant requires a heuristic")
)

// Variant selects the frontier ordering and relaxation policy of the engine.
type Variant int

const (
	// BFS explores in FIFO order with a visited-once guard.
	BFS Variant = iota

	// DFS explores in LIFO order with a visited-once guard.
	DFS

	// Dijkstra explores by lowest accumulated cost, re-relaxing nodes
	// whenever a strictly cheaper path is found.
	Dijkstra

	// AStar explores by accumulated cost plus heuristic, with Dijkstra's
	// re-relaxation rule.
	AStar

	// Greedy explores by heuristic alone with a visited-once guard and
	// no cost relaxation at all.
	Greedy
)

// variantNames backs Variant.String; order must follow the const block.
var variantNames = [...]string{"BFS", "DFS", "Dijkstra", "A*", "GreedyBestFirst"}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool { return v >= BFS && v <= Greedy }

// String returns the display name of the variant.
func (v Variant) String() string {
	if !v.Valid() {
		return "Unknown"
	}

	return variantNames[v]
}

// costAware reports whether the variant accumulates movement costs.
func (v Variant) costAware() bool { return v == Dijkstra || v == AStar }

// informed reports whether the variant consults a heuristic.
func (v Variant) informed() bool { return v == AStar || v == Greedy }

// NeighborFunc enumerates the IDs adjacent to a node.
type NeighborFunc func(id string) ([]string, error)

// CostFunc reports the movement cost between two adjacent nodes.
type CostFunc func(from, to string) (int, error)

// HeuristicFunc estimates the remaining cost from a to b. It must never
// overestimate (admissible) for A* to retain optimality.
type HeuristicFunc func(a, b string) float64

// Options holds engine parameters and callbacks.
//
// Neighbors and Cost default to the bound structure's own methods; the
// indirection exists so the same engine runs unmodified over a grid, a
// graph, or anything else that can enumerate adjacency.
type Options struct {
	// Neighbors overrides the structure's neighbor enumeration.
	Neighbors NeighborFunc

	// Cost overrides the structure's movement-cost function.
	Cost CostFunc

	// Heuristic estimates remaining cost to the goal. Required for A*
	// and greedy best-first; ignored by the other variants.
	Heuristic HeuristicFunc

	// OnDequeue is called with the node ID of every expansion.
	OnDequeue func(id string)

	// OnEnqueue is called with the node ID of every frontier insertion.
	OnEnqueue func(id string)
}

// Option configures the engine via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks and nil function slots
// (filled from the structure in New).
func DefaultOptions() Options {
	return Options{
		OnDequeue: func(string) {},
		OnEnqueue: func(string) {},
	}
}

// WithNeighborFunc overrides neighbor enumeration.
func WithNeighborFunc(fn NeighborFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Neighbors = fn
		}
	}
}

// WithCostFunc overrides the movement-cost function.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithHeuristic supplies the cost-to-goal estimate for informed variants.
func WithHeuristic(fn HeuristicFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithOnDequeue registers a callback fired on every expansion.
func WithOnDequeue(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnEnqueue registers a callback fired on every frontier insertion.
func WithOnEnqueue(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
