package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdramos/pathviz/core"
)

// TestState_Valid checks the declared range and both out-of-range sides.
func TestState_Valid(t *testing.T) {
	for s := core.Deactivated; s <= core.Path; s++ {
		assert.True(t, s.Valid(), "state %d should be valid", s)
	}
	assert.False(t, core.State(-1).Valid())
	assert.False(t, core.State(7).Valid())
}

// TestState_Predicates verifies each predicate matches exactly its own tag.
func TestState_Predicates(t *testing.T) {
	cases := []struct {
		state core.State
		pred  func(core.State) bool
	}{
		{core.Deactivated, core.State.IsDeactivated},
		{core.Activated, core.State.IsActivated},
		{core.Start, core.State.IsStart},
		{core.Goal, core.State.IsGoal},
		{core.Visited, core.State.IsVisited},
		{core.Frontier, core.State.IsFrontier},
		{core.Path, core.State.IsPath},
	}
	for _, tc := range cases {
		for s := core.Deactivated; s <= core.Path; s++ {
			want := s == tc.state
			assert.Equal(t, want, tc.pred(s), "%v predicate on %v", tc.state, s)
		}
	}
}

// TestState_Traversable ensures only walls block traversal.
func TestState_Traversable(t *testing.T) {
	assert.False(t, core.Deactivated.Traversable())
	for s := core.Activated; s <= core.Path; s++ {
		assert.True(t, s.Traversable(), "state %v", s)
	}
}

// TestState_String covers names and the out-of-range fallback.
func TestState_String(t *testing.T) {
	assert.Equal(t, "Start", core.Start.String())
	assert.Equal(t, "Frontier", core.Frontier.String())
	assert.Equal(t, "Unknown", core.State(42).String())
}
