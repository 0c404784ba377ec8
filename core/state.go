package core

import "errors"

// ErrInvalidState indicates a state tag outside the declared State values
// was offered to a mutation boundary.
var ErrInvalidState = errors.New("core: invalid state tag")

// State is the visual and logical tag carried by every node (and, on
// graphs, every edge). Exactly one State holds at a time.
type State int

const (
	// Deactivated marks a wall cell: never offered to the frontier.
	Deactivated State = iota

	// Activated marks a plain traversable node.
	Activated

	// Start marks the unique search origin.
	Start

	// Goal marks the unique search target.
	Goal

	// Visited marks a node already expanded by the engine.
	Visited

	// Frontier marks a node discovered but not yet expanded.
	Frontier

	// Path marks a node on the reconstructed start-goal path.
	Path
)

// stateNames backs State.String; order must follow the const block.
var stateNames = [...]string{
	"Deactivated",
	"Activated",
	"Start",
	"Goal",
	"Visited",
	"Frontier",
	"Path",
}

// Valid reports whether s is one of the declared State values.
// Complexity: O(1).
func (s State) Valid() bool {
	return s >= Deactivated && s <= Path
}

// String returns the canonical name of the state, or "Unknown" for
// out-of-range values.
func (s State) String() string {
	if !s.Valid() {
		return "Unknown"
	}

	return stateNames[s]
}

// IsDeactivated reports whether the node is a wall.
func (s State) IsDeactivated() bool { return s == Deactivated }

// IsActivated reports whether the node is plain traversable.
func (s State) IsActivated() bool { return s == Activated }

// IsStart reports whether the node is the search origin.
func (s State) IsStart() bool { return s == Start }

// IsGoal reports whether the node is the search target.
func (s State) IsGoal() bool { return s == Goal }

// IsVisited reports whether the node has been expanded.
func (s State) IsVisited() bool { return s == Visited }

// IsFrontier reports whether the node is pending expansion.
func (s State) IsFrontier() bool { return s == Frontier }

// IsPath reports whether the node lies on the highlighted path.
func (s State) IsPath() bool { return s == Path }

// Traversable reports whether the engine may enter a node in this state:
// anything except a wall. Visited and Frontier remain traversable so that
// cost-aware variants can re-relax already-seen nodes.
func (s State) Traversable() bool { return s != Deactivated }
