package grid_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdramos/pathviz/core"
	"github.com/pdramos/pathviz/costmap"
	"github.com/pdramos/pathviz/grid"
)

// TestNew_Defaults builds a grid and checks the default cell texture.
func TestNew_Defaults(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.Width())

	cell, err := g.Get(2, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Activated, cell.State)
	assert.Equal(t, grid.DefaultCost, cell.Cost)
}

// TestNew_Errors covers bad dimensions and invalid initial state.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New(0, 5)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
	_, err = grid.New(5, -1)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)
	_, err = grid.New(5, 5, grid.WithInitialState(core.State(99)))
	assert.ErrorIs(t, err, core.ErrInvalidState)
}

// TestNew_WithCosts validates the dimension check and cost wiring.
func TestNew_WithCosts(t *testing.T) {
	costs := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(2, 2, grid.WithCosts(costs))
	require.NoError(t, err)
	cell, err := g.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, cell.Cost)

	_, err = grid.New(3, 2, grid.WithCosts(costs))
	assert.ErrorIs(t, err, grid.ErrCostDimensions)
	_, err = grid.New(2, 3, grid.WithCosts(costs))
	assert.ErrorIs(t, err, grid.ErrCostDimensions)
}

// TestNew_WithCostFile loads costs from disk and rejects mismatches.
func TestNew_WithCostFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.txt")
	require.NoError(t, costmap.WriteFile(path, [][]int{{5, 6}, {7, 8}}))

	g, err := grid.New(2, 2, grid.WithCostFile(path))
	require.NoError(t, err)
	cost, err := g.MovementCost(grid.CellID(0, 0), grid.CellID(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)

	_, err = grid.New(4, 4, grid.WithCostFile(path))
	assert.ErrorIs(t, err, grid.ErrCostDimensions)
}

// TestGet_OutOfRange checks every out-of-bounds side.
func TestGet_OutOfRange(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = g.Get(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "index %v", rc)
	}
}

// TestNeighbors_CornerEdgeCenter verifies counts, order, and bounds.
func TestNeighbors_CornerEdgeCenter(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	// Corner: only down and right survive the bounds check.
	got, err := g.Neighbors(grid.CellID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"1,0", "0,1"}, got)

	// Center: all four, in up/down/left/right order.
	got, err = g.Neighbors(grid.CellID(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "2,1", "1,0", "1,2"}, got)

	// Edge cell.
	got, err = g.Neighbors(grid.CellID(2, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1,1", "2,0", "2,2"}, got)

	// Malformed and out-of-range IDs.
	_, err = g.Neighbors("nope")
	assert.ErrorIs(t, err, grid.ErrBadCellID)
	_, err = g.Neighbors(grid.CellID(9, 9))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestSetCellState_StartUniqueness moves the Start tag around and checks
// exactly one cell ever holds it.
func TestSetCellState_StartUniqueness(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetCellState(0, 0, core.Start))
	require.NoError(t, g.SetCellState(2, 2, core.Start))

	old, err := g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Activated, old.State, "previous start must demote")

	id, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grid.CellID(2, 2), id)
}

// TestSetCellState_GoalUniqueness mirrors the Start invariant for Goal.
func TestSetCellState_GoalUniqueness(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.SetCellState(0, 1, core.Goal))
	require.NoError(t, g.SetCellState(1, 1, core.Goal))

	old, err := g.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Activated, old.State)

	id, ok := g.Goal()
	require.True(t, ok)
	assert.Equal(t, grid.CellID(1, 1), id)
}

// TestSetCellState_ActivateOnStartNoop checks drag-paint protection.
func TestSetCellState_ActivateOnStartNoop(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetCellState(0, 0, core.Start))

	require.NoError(t, g.SetCellState(0, 0, core.Activated))
	cell, err := g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Start, cell.State)

	// Other overwrites still go through, including on the start cell.
	require.NoError(t, g.SetCellState(0, 0, core.Deactivated))
	cell, err = g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Deactivated, cell.State)
}

// TestSetCellState_Errors rejects garbage tags and bad indices.
func TestSetCellState_Errors(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.SetCellState(0, 0, core.State(-3)), core.ErrInvalidState)
	assert.ErrorIs(t, g.SetCellState(5, 0, core.Visited), grid.ErrOutOfRange)
}

// TestMovementCost_DestinationModel confirms cost rides on the target cell.
func TestMovementCost_DestinationModel(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithCosts([][]int{{1, 9}, {4, 2}}))
	require.NoError(t, err)

	cost, err := g.MovementCost(grid.CellID(0, 0), grid.CellID(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, cost)

	// Reverse direction charges the other endpoint.
	cost, err = g.MovementCost(grid.CellID(0, 1), grid.CellID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, cost)

	_, err = g.MovementCost(grid.CellID(0, 0), grid.CellID(8, 8))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestStartGoal_AbsentByDefault ensures a fresh grid has neither tag.
func TestStartGoal_AbsentByDefault(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Goal()
	assert.False(t, ok)
}

// TestParseCellID round-trips and rejects malformed IDs.
func TestParseCellID(t *testing.T) {
	row, col, err := grid.ParseCellID(grid.CellID(12, 7))
	require.NoError(t, err)
	assert.Equal(t, 12, row)
	assert.Equal(t, 7, col)

	for _, bad := range []string{"", "3", "a,b", "1,2,3", "1;2"} {
		_, _, err = grid.ParseCellID(bad)
		assert.ErrorIs(t, err, grid.ErrBadCellID, "id %q", bad)
	}
}
