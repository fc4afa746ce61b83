package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRowsValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		ok   bool
	}{
		{"valid", [][]int{{2, 0}, {0, 4}}, true},
		{"all empty", [][]int{{0, 0, 0}}, true},
		{"no rows", [][]int{}, false},
		{"empty row", [][]int{{}}, false},
		{"ragged", [][]int{{2, 0}, {0}}, false},
		{"negative", [][]int{{-2, 0}}, false},
		{"one is not a tile", [][]int{{1, 0}}, false},
		{"not a power of two", [][]int{{6, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, ErrInvalidBoardState), "got %v", err)
			}
		})
	}
}

func TestNewBoardDimensions(t *testing.T) {
	_, err := NewBoard(0, 4)
	require.ErrorIs(t, err, ErrInvalidBoardState)

	b, err := NewBoard(3, 5)
	require.NoError(t, err)
	require.Equal(t, 3, b.Height())
	require.Equal(t, 5, b.Width())
	require.Equal(t, 15, b.CountEmpty())
	require.Equal(t, NoTile, b.HighestTile())
}

func TestCloneIsIndependent(t *testing.T) {
	b := MustFromRows([][]int{{2, 4}, {8, 0}})
	c := b.Clone()
	c.Set(1, 1, 16)

	require.Equal(t, 0, b.Get(1, 1))
	require.False(t, b.Equal(c))
}

func TestBoardAggregates(t *testing.T) {
	b := MustFromRows([][]int{{2, 4, 0}, {8, 0, 1024}})
	require.Equal(t, 1024, b.HighestTile())
	require.Equal(t, 2+4+8+1024, b.SumTiles())
	require.Equal(t, 1+2+3+10, b.SumLog2Tiles())
	require.Equal(t, []Point{{0, 2}, {1, 1}}, b.EmptyCells())
	require.Equal(t, [][]int{{2, 4, 0}, {8, 0, 1024}}, b.Rows())
}

func TestBoardString(t *testing.T) {
	b := MustFromRows([][]int{{2, 16}, {0, 4}})
	require.Equal(t, " 2\t16\n 0\t 4\n", b.String())
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		require.NoError(t, err)
		require.Equal(t, dir, got)
	}

	got, err := ParseDirection("d")
	require.NoError(t, err)
	require.Equal(t, Right, got)

	_, err = ParseDirection("sideways")
	require.Error(t, err)
}
