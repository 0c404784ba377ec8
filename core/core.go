package core

// Structure is the traversable-structure abstraction consumed by the search
// engine. Both the grid and the freeform graph implement it.
//
// Node identity is a string ID. Implementations must keep Neighbors
// deterministic: repeated calls on an unchanged structure return the same
// IDs in the same order, so that search traces are reproducible.
type Structure interface {
	// Neighbors enumerates the IDs adjacent to id.
	// Returns an error if id does not name a node of the structure.
	Neighbors(id string) ([]string, error)

	// MovementCost reports the price of moving from one node to an
	// adjacent one. Grids charge the destination cell's cost; graphs
	// charge the connecting edge's cost and fail if no edge exists.
	MovementCost(from, to string) (int, error)

	// StateOf returns the current state tag of the node.
	StateOf(id string) (State, error)

	// SetState overwrites the node's state tag, enforcing the Start/Goal
	// uniqueness invariant: promoting a node to Start (or Goal) first
	// demotes any existing holder to Activated. Rejects invalid tags
	// with ErrInvalidState.
	SetState(id string, s State) error

	// Start returns the ID of the unique Start node, if one exists.
	Start() (string, bool)

	// Goal returns the ID of the unique Goal node, if one exists.
	Goal() (string, bool)
}

// EdgeMarker is an optional upgrade for structures that carry explicit
// edges. The engine type-asserts for it and, when present, paints search
// progress onto edges as well as nodes. Marking a nonexistent edge is a
// harmless no-op: edge state is a rendering side channel, never an
// algorithmic input.
type EdgeMarker interface {
	MarkEdge(a, b string, s State)
}
