package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestShiftDirections(t *testing.T) {
	start := [][]int{
		{2, 2, 0, 4},
		{0, 4, 4, 4},
		{2, 0, 0, 2},
		{8, 0, 8, 0},
	}

	tests := []struct {
		dir   Direction
		want  [][]int
		delta int
	}{
		{Left, [][]int{{4, 4, 0, 0}, {8, 4, 0, 0}, {4, 0, 0, 0}, {16, 0, 0, 0}}, 4 + 8 + 4 + 16},
		{Right, [][]int{{0, 0, 4, 4}, {0, 0, 4, 8}, {0, 0, 0, 4}, {0, 0, 0, 16}}, 4 + 8 + 4 + 16},
		{Up, [][]int{{4, 2, 4, 8}, {8, 4, 8, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 4 + 8},
		{Down, [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {4, 2, 4, 8}, {8, 4, 8, 2}}, 4 + 8},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := MustFromRows(start)
			delta, changed := b.Shift(tt.dir)
			require.True(t, changed)
			require.Equal(t, tt.delta, delta)
			require.Equal(t, tt.want, b.Rows())
		})
	}
}

// 2x2 board with tiles on the diagonal, LEFT slides the second row only
func TestApplyMoveDiagonalLeft(t *testing.T) {
	b := MustFromRows([][]int{{2, 0}, {0, 2}})

	delta, changed, err := ApplyMove(&b, Left, newRand())
	require.NoError(t, err)
	require.True(t, changed)
	require.Zero(t, delta)

	require.Equal(t, 2, b.Get(0, 0))
	require.Equal(t, 2, b.Get(1, 0))

	// Exactly one of the two freed cells received a tile
	spawned := 0
	for _, p := range []Point{{0, 1}, {1, 1}} {
		if v := b.Get(p.Row, p.Col); v != 0 {
			require.Contains(t, []int{2, 4}, v)
			spawned++
		}
	}
	require.Equal(t, 1, spawned)
	require.Equal(t, 1, b.CountEmpty())
}

// Single row [4,4,0,0] moved RIGHT merges into the rightmost cell
func TestShiftSingleRowRight(t *testing.T) {
	b := MustFromRows([][]int{{4, 4, 0, 0}})

	delta, changed := b.Shift(Right)
	require.True(t, changed)
	require.Equal(t, 8, delta)
	require.Equal(t, [][]int{{0, 0, 0, 8}}, b.Rows())

	b = MustFromRows([][]int{{4, 4, 0, 0}})
	delta, changed, err := ApplyMove(&b, Right, newRand())
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 8, delta)
	require.Equal(t, 8, b.Get(0, 3))
	require.Equal(t, 2, b.CountEmpty())
}

func TestNoOpMove(t *testing.T) {
	b := MustFromRows([][]int{
		{2, 4, 0},
		{8, 0, 0},
		{0, 0, 0},
	})
	before := b.Clone()

	_, ok := Successor(b, Left, newRand())
	require.False(t, ok)
	_, ok = Successor(b, Up, newRand())
	require.False(t, ok)

	delta, changed, err := ApplyMove(&b, Left, newRand())
	require.NoError(t, err)
	require.False(t, changed)
	require.Zero(t, delta)
	require.True(t, before.Equal(b), "no-op move must not spawn a tile")
}

func TestSuccessorLeavesInputUntouched(t *testing.T) {
	b := MustFromRows([][]int{{2, 2}, {0, 4}})
	before := b.Clone()

	out, ok := Successor(b, Left, newRand())
	require.True(t, ok)
	require.Equal(t, 4, out.Delta)
	require.Equal(t, 4, out.Board.Get(0, 0))
	require.True(t, before.Equal(b))
}

func TestStateSuccessorScoring(t *testing.T) {
	b := MustFromRows([][]int{{2, 2, 4, 0}})

	tests := []struct {
		scoring Scoring
		score   func(next Board) int
	}{
		{ScoringIncremental, func(Board) int { return 10 + 4 }},
		{ScoringTileSum, func(next Board) int { return next.SumTiles() }},
		{ScoringLog2Sum, func(next Board) int { return next.SumLog2Tiles() }},
	}

	for _, tt := range tests {
		t.Run(tt.scoring.String(), func(t *testing.T) {
			st := State{Board: b, Score: 10, Scoring: tt.scoring}
			next, ok := st.Successor(Left, newRand())
			require.True(t, ok)
			require.Equal(t, tt.score(next.Board), next.Score)
			require.Equal(t, 10, st.Score)
			require.Equal(t, tt.scoring, next.Scoring)
		})
	}
}

func TestParseScoring(t *testing.T) {
	for _, s := range []Scoring{ScoringIncremental, ScoringTileSum, ScoringLog2Sum} {
		got, err := ParseScoring(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := ParseScoring("bogus")
	require.Error(t, err)
}
