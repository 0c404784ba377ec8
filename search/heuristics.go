package search

import (
	"math"

	"github.com/pdramos/pathviz/grid"
)

// Positioner is implemented by structures whose nodes carry 2D positions;
// the graph package satisfies it.
type Positioner interface {
	Position(id string) (x, y float64, ok bool)
}

// Manhattan is the grid heuristic: |dr| + |dc| between two "row,col" cell
// IDs. IDs that do not parse contribute a zero estimate, which keeps the
// heuristic admissible rather than failing mid-animation.
func Manhattan(a, b string) float64 {
	ar, ac, err := grid.ParseCellID(a)
	if err != nil {
		return 0
	}
	br, bc, err := grid.ParseCellID(b)
	if err != nil {
		return 0
	}

	return math.Abs(float64(ar-br)) + math.Abs(float64(ac-bc))
}

// Euclidean returns the graph heuristic: straight-line distance between
// node positions read from p. Unknown IDs contribute a zero estimate.
func Euclidean(p Positioner) HeuristicFunc {
	return func(a, b string) float64 {
		ax, ay, ok := p.Position(a)
		if !ok {
			return 0
		}
		bx, by, ok := p.Position(b)
		if !ok {
			return 0
		}

		return math.Hypot(ax-bx, ay-by)
	}
}
