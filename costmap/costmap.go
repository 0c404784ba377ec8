package costmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for cost-map operations.
var (
	// ErrEmpty indicates the input contained no rows.
	ErrEmpty = errors.New("costmap: input contains no rows")

	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("costmap: all rows must have the same length")

	// ErrNegativeCost indicates a negative cost value in the input.
	ErrNegativeCost = errors.New("costmap: cost values must be non-negative")

	// ErrBadValue indicates a token that is not an integer.
	ErrBadValue = errors.New("costmap: cost values must be integers")

	// ErrBadRange indicates an invalid generation range or size.
	ErrBadRange = errors.New("costmap: invalid generation parameters")
)

// Load parses a cost matrix from r: one whitespace-separated row of
// non-negative integers per line. Blank lines are skipped.
// Returns ErrEmpty, ErrRaggedRows, ErrNegativeCost, or ErrBadValue.
// Complexity: O(rows x cols).
func Load(r io.Reader) ([][]int, error) {
	var costs [][]int
	width := -1

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		// First non-empty row fixes the expected width.
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrRaggedRows, len(costs), len(fields), width)
		}

		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadValue, f)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: got %d", ErrNegativeCost, v)
			}
			row = append(row, v)
		}
		costs = append(costs, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costmap: read failed: %w", err)
	}
	if len(costs) == 0 {
		return nil, ErrEmpty
	}

	return costs, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("costmap: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Write emits costs in the Load format: one row per line, values separated
// by single spaces.
func Write(w io.Writer, costs [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range costs {
		for i, v := range row {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("costmap: write failed: %w", err)
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
				return fmt.Errorf("costmap: write failed: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("costmap: write failed: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and delegates to Write.
func WriteFile(path string, costs [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("costmap: create %s: %w", path, err)
	}
	if err = Write(f, costs); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Generate produces a size x size matrix of costs drawn uniformly from
// [minCost, maxCost] using rng. A nil rng falls back to the package-level
// source. Returns ErrBadRange when size < 1, minCost < 0, or
// minCost > maxCost.
func Generate(size, minCost, maxCost int, rng *rand.Rand) ([][]int, error) {
	if size < 1 || minCost < 0 || minCost > maxCost {
		return nil, fmt.Errorf("%w: size=%d min=%d max=%d",
			ErrBadRange, size, minCost, maxCost)
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	span := maxCost - minCost + 1
	costs := make([][]int, size)
	for y := 0; y < size; y++ {
		row := make([]int, size)
		for x := 0; x < size; x++ {
			row[x] = minCost + intn(span)
		}
		costs[y] = row
	}

	return costs, nil
}
