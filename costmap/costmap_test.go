package costmap_test

import (
	"bytes"
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdramos/pathviz/costmap"
)

// TestLoad_Basic parses a small rectangular matrix.
func TestLoad_Basic(t *testing.T) {
	in := "1 2 3\n4 5 6\n"
	got, err := costmap.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, got)
}

// TestLoad_SkipsBlankLines tolerates blank separator lines.
func TestLoad_SkipsBlankLines(t *testing.T) {
	in := "7 8\n\n9 1\n"
	got, err := costmap.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7, 8}, {9, 1}}, got)
}

// TestLoad_Errors exercises every sentinel.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", costmap.ErrEmpty},
		{"only blanks", "\n  \n", costmap.ErrEmpty},
		{"ragged", "1 2 3\n4 5\n", costmap.ErrRaggedRows},
		{"negative", "1 -2\n3 4\n", costmap.ErrNegativeCost},
		{"not a number", "1 x\n", costmap.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costmap.Load(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestWrite_RoundTrip checks that Write output re-loads to the same matrix.
func TestWrite_RoundTrip(t *testing.T) {
	costs := [][]int{{1, 9, 4}, {0, 3, 7}, {5, 5, 2}}
	var buf bytes.Buffer
	require.NoError(t, costmap.Write(&buf, costs))

	got, err := costmap.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, costs, got)
}

// TestFile_RoundTrip covers the file wrappers end to end.
func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.txt")
	costs, err := costmap.Generate(6, 1, 9, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.NoError(t, costmap.WriteFile(path, costs))
	got, err := costmap.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, costs, got)
}

// TestGenerate_Bounds draws many values and checks they stay in range.
func TestGenerate_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	costs, err := costmap.Generate(12, 3, 5, rng)
	require.NoError(t, err)
	require.Len(t, costs, 12)
	for _, row := range costs {
		require.Len(t, row, 12)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 3)
			assert.LessOrEqual(t, v, 5)
		}
	}
}

// TestGenerate_Deterministic re-seeds and expects identical output.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := costmap.Generate(8, 0, 9, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := costmap.Generate(8, 0, 9, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerate_BadRange rejects invalid parameters.
func TestGenerate_BadRange(t *testing.T) {
	for _, args := range [][3]int{{0, 1, 9}, {5, -1, 9}, {5, 9, 1}} {
		_, err := costmap.Generate(args[0], args[1], args[2], nil)
		assert.True(t, errors.Is(err, costmap.ErrBadRange), "args %v", args)
	}
}

// TestLoadFile_Missing surfaces the underlying open failure.
func TestLoadFile_Missing(t *testing.T) {
	_, err := costmap.LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
