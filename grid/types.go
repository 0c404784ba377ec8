// Package grid defines types, sentinel errors, and configuration options
// for the uniform-cell structure.
package grid

import (
	"errors"

	"github.com/pdramos/pathviz/core"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfRange indicates a row/col access outside [0,height)x[0,width).
	ErrOutOfRange = errors.New("grid: row or column index out of range")

	// ErrBadDimensions indicates a grid constructed with a non-positive
	// height or width.
	ErrBadDimensions = errors.New("grid: height and width must be positive")

	// ErrCostDimensions indicates a cost map whose shape does not match
	// the grid. Fatal at construction time.
	ErrCostDimensions = errors.New("grid: cost map dimensions do not match grid")

	// ErrBadCellID indicates a node ID that does not parse as "row,col".
	ErrBadCellID = errors.New(`grid: cell ID must have the form "row,col"`)
)

// DefaultCost is the entry price of a cell when no cost map is loaded.
const DefaultCost = 1

// Cell is a single grid square: its coordinates, state tag, and entry cost.
type Cell struct {
	Row, Col int
	State    core.State
	Cost     int
}

// Options holds construction parameters for a Grid.
//
// InitialState - state applied to every cell at construction.
// Costs        - optional per-cell cost matrix; must match the grid shape.
// CostFile     - optional path to a plain-text cost map; loaded during New.
type Options struct {
	InitialState core.State
	Costs        [][]int
	CostFile     string

	// internal error recorded during option parsing
	err error
}

// Option configures Grid construction via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with every cell Activated and unit costs.
func DefaultOptions() Options {
	return Options{
		InitialState: core.Activated,
	}
}

// WithInitialState sets the state applied to every cell at construction.
// Invalid tags surface as core.ErrInvalidState when New runs.
func WithInitialState(s core.State) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.err = core.ErrInvalidState
			return
		}
		o.InitialState = s
	}
}

// WithCosts supplies a per-cell cost matrix. Shape is validated against the
// grid in New; a mismatch fails construction with ErrCostDimensions.
func WithCosts(costs [][]int) Option {
	return func(o *Options) {
		o.Costs = costs
	}
}

// WithCostFile loads per-cell costs from a plain-text cost map during New.
// Mutually exclusive with WithCosts; the file wins if both are given.
func WithCostFile(path string) Option {
	return func(o *Options) {
		o.CostFile = path
	}
}
