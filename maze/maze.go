package maze

import (
	"math/rand"

	"github.com/pdramos/pathviz/core"
	"github.com/pdramos/pathviz/grid"
)

// Options holds generation parameters.
type Options struct {
	// Rand supplies randomness; nil falls back to the package-level
	// source. Seed it for reproducible mazes.
	Rand *rand.Rand
}

// Option configures maze generation via functional arguments.
type Option func(*Options)

// WithRand sets the random source used for seeding and candidate picks.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// candidate is a pending wall: the midpoint cell and the far cell two
// steps away in one grid direction. Carving activates both.
type candidate struct {
	midRow, midCol int
	farRow, farCol int
}

// directions mirrors the grid's up, down, left, right enumeration.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Generate carves a maze into g in place:
//
//  1. wall every cell (Deactivated);
//  2. activate a uniformly random cell at even row/col coordinates and
//     enqueue its wall candidates;
//  3. repeatedly remove a uniformly random candidate ("random any", not
//     front or back) and, when its far cell is still wall, carve the
//     passage by activating both midpoint and far cell, then enqueue the
//     far cell's own candidates;
//  4. stop when no candidates remain.
//
// Complexity: O(height x width) cells carved, O(candidates) loop.
func Generate(g *grid.Grid, opts ...Option) {
	if g == nil {
		return
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	intn := rand.Intn
	if o.Rand != nil {
		intn = o.Rand.Intn
	}

	h, w := g.Height(), g.Width()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			_ = g.SetCellState(r, c, core.Deactivated)
		}
	}

	// Seed at random even coordinates.
	seedRow := 2 * intn((h+1)/2)
	seedCol := 2 * intn((w+1)/2)
	_ = g.SetCellState(seedRow, seedCol, core.Activated)

	pending := appendCandidates(nil, g, seedRow, seedCol)
	for len(pending) > 0 {
		// Random-any removal: swap the pick with the tail and shrink.
		i := intn(len(pending))
		cand := pending[i]
		pending[i] = pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		far, err := g.Get(cand.farRow, cand.farCol)
		if err != nil || !far.State.IsDeactivated() {
			continue
		}
		_ = g.SetCellState(cand.midRow, cand.midCol, core.Activated)
		_ = g.SetCellState(cand.farRow, cand.farCol, core.Activated)
		pending = appendCandidates(pending, g, cand.farRow, cand.farCol)
	}
}

// appendCandidates enqueues the wall candidates of cell (row, col): one
// per direction whose far cell lies in bounds.
func appendCandidates(pending []candidate, g *grid.Grid, row, col int) []candidate {
	for _, d := range directions {
		farRow, farCol := row+2*d[0], col+2*d[1]
		if !g.InBounds(farRow, farCol) {
			continue
		}
		pending = append(pending, candidate{
			midRow: row + d[0],
			midCol: col + d[1],
			farRow: farRow,
			farCol: farCol,
		})
	}

	return pending
}
