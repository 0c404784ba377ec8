package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdramos/pathviz/core"
	"github.com/pdramos/pathviz/costmap"
)

// neighborOffsets is the fixed enumeration order: up, down, left, right.
// The order is irrelevant for correctness but must stay deterministic so
// traversal traces are reproducible.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a fixed-size 2D array of cells with implicit 4-adjacency.
// It implements core.Structure; cell IDs have the form "row,col".
type Grid struct {
	height, width int
	cells         [][]Cell
}

// New constructs a height x width grid. Every cell starts in the configured
// initial state (Activated by default) with DefaultCost, unless a cost map
// is supplied via WithCosts or WithCostFile.
//
// Returns ErrBadDimensions for non-positive sizes, core.ErrInvalidState for
// an invalid initial state, ErrCostDimensions when a cost map does not match
// the grid shape, or a costmap error when a cost file fails to load.
// Complexity: O(height x width).
func New(height, width int, opts ...Option) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, height, width)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	costs := o.Costs
	if o.CostFile != "" {
		loaded, err := costmap.LoadFile(o.CostFile)
		if err != nil {
			return nil, err
		}
		costs = loaded
	}
	if costs != nil {
		if len(costs) != height {
			return nil, fmt.Errorf("%w: map has %d rows, grid has %d",
				ErrCostDimensions, len(costs), height)
		}
		for r, row := range costs {
			if len(row) != width {
				return nil, fmt.Errorf("%w: row %d has %d columns, grid has %d",
					ErrCostDimensions, r, len(row), width)
			}
		}
	}

	g := &Grid{
		height: height,
		width:  width,
		cells:  make([][]Cell, height),
	}
	for r := 0; r < height; r++ {
		g.cells[r] = make([]Cell, width)
		for c := 0; c < width; c++ {
			cost := DefaultCost
			if costs != nil {
				cost = costs[r][c]
			}
			g.cells[r][c] = Cell{Row: r, Col: c, State: o.InitialState, Cost: cost}
		}
	}

	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CellID formats the node ID for cell (row, col).
func CellID(row, col int) string {
	return fmt.Sprintf("%d,%d", row, col)
}

// ParseCellID is the inverse of CellID.
// Returns ErrBadCellID for anything that is not "<int>,<int>".
func ParseCellID(id string) (row, col int, err error) {
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	if row, err = strconv.Atoi(rs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	if col, err = strconv.Atoi(cs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}

	return row, col, nil
}

// Get returns the cell at (row, col), or ErrOutOfRange.
// The pointer remains valid for the lifetime of the grid; callers use it
// for read access when rendering.
func (g *Grid) Get(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d",
			ErrOutOfRange, row, col, g.height, g.width)
	}

	return &g.cells[row][col], nil
}

// SetCellState overwrites the state of cell (row, col), enforcing the
// structure invariants:
//
//   - promoting to Start (or Goal) first demotes any existing holder of
//     that tag to Activated, so at most one of each ever exists;
//   - an Activated request against the current Start cell is a no-op, so
//     drag-painting cannot accidentally erase the origin;
//   - any other transition simply overwrites the tag.
//
// Returns core.ErrInvalidState for an out-of-enum tag, ErrOutOfRange for
// bad indices.
func (g *Grid) SetCellState(row, col int, s core.State) error {
	if !s.Valid() {
		return core.ErrInvalidState
	}
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d",
			ErrOutOfRange, row, col, g.height, g.width)
	}

	switch {
	case s.IsStart():
		if r, c, ok := g.find(core.Start); ok {
			g.cells[r][c].State = core.Activated
		}
		g.cells[row][col].State = core.Start
	case s.IsGoal():
		if r, c, ok := g.find(core.Goal); ok {
			g.cells[r][c].State = core.Activated
		}
		g.cells[row][col].State = core.Goal
	case s.IsActivated() && g.cells[row][col].State.IsStart():
		// Plain activation may not self-demote the origin.
	default:
		g.cells[row][col].State = s
	}

	return nil
}

// find scans row-major for the first cell holding state s.
func (g *Grid) find(s core.State) (row, col int, ok bool) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c].State == s {
				return r, c, true
			}
		}
	}

	return 0, 0, false
}

// Neighbors enumerates the up-to-four orthogonally adjacent cell IDs of id,
// bounds-checked, in the fixed up, down, left, right order.
// Implements core.Structure.
func (g *Grid) Neighbors(id string) ([]string, error) {
	row, col, err := ParseCellID(id)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: %q", ErrOutOfRange, id)
	}

	out := make([]string, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if g.InBounds(nr, nc) {
			out = append(out, CellID(nr, nc))
		}
	}

	return out, nil
}

// MovementCost reports the price of entering cell "to": its stored cost.
// The "from" argument exists for interface symmetry with edge-weighted
// structures and is not consulted beyond validation.
// Implements core.Structure.
func (g *Grid) MovementCost(from, to string) (int, error) {
	if _, _, err := ParseCellID(from); err != nil {
		return 0, err
	}
	row, col, err := ParseCellID(to)
	if err != nil {
		return 0, err
	}
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, to)
	}

	return g.cells[row][col].Cost, nil
}

// StateOf returns the state tag of the cell named by id.
// Implements core.Structure.
func (g *Grid) StateOf(id string) (core.State, error) {
	row, col, err := ParseCellID(id)
	if err != nil {
		return 0, err
	}
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, id)
	}

	return g.cells[row][col].State, nil
}

// SetState is the ID-addressed form of SetCellState.
// Implements core.Structure.
func (g *Grid) SetState(id string, s core.State) error {
	row, col, err := ParseCellID(id)
	if err != nil {
		return err
	}

	return g.SetCellState(row, col, s)
}

// Start returns the ID of the unique Start cell, if present.
// Implements core.Structure.
func (g *Grid) Start() (string, bool) {
	if r, c, ok := g.find(core.Start); ok {
		return CellID(r, c), true
	}

	return "", false
}

// Goal returns the ID of the unique Goal cell, if present.
// Implements core.Structure.
func (g *Grid) Goal() (string, bool) {
	if r, c, ok := g.find(core.Goal); ok {
		return CellID(r, c), true
	}

	return "", false
}
