package mcts

import (
	"math/rand"
	"testing"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/stretchr/testify/require"
)

func TestRolloutPlaysToGameOver(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, scoring := range []grid.Scoring{grid.ScoringIncremental, grid.ScoringTileSum, grid.ScoringLog2Sum} {
		start := newState(openingRows(), scoring)
		before := start.Board.Clone()

		final := Rollout(start, rng)
		require.True(t, final.Terminal(), scoring.String())
		require.True(t, before.Equal(start.Board), "rollout modified its start state")

		switch scoring {
		case grid.ScoringIncremental:
			require.GreaterOrEqual(t, final.Score, start.Score)
		case grid.ScoringTileSum:
			require.Equal(t, final.Board.SumTiles(), final.Score)
		case grid.ScoringLog2Sum:
			require.Equal(t, final.Board.SumLog2Tiles(), final.Score)
		}
	}
}

func TestRolloutOfTerminalState(t *testing.T) {
	start := newState([][]int{{2, 4}, {4, 2}}, grid.ScoringTileSum)
	final := Rollout(start, rand.New(rand.NewSource(1)))
	require.True(t, start.Board.Equal(final.Board))
	require.Equal(t, 12, final.Score)
}

func TestEvaluateRolloutValue(t *testing.T) {
	start := newState([][]int{{2, 4}, {8, 2}}, grid.ScoringTileSum)
	rng := rand.New(rand.NewSource(1))

	cfg := DefaultConfig()
	require.Equal(t, 16.0, NewEvaluator(cfg).Evaluate(start, rng))

	cfg.RolloutValue = RolloutHighestTile
	require.Equal(t, 8.0, NewEvaluator(cfg).Evaluate(start, rng))

	// The heuristic only counts when weighted
	cfg.HeuristicWeight = 0.5
	eval := NewEvaluator(cfg)
	require.Equal(t, 8.0+0.5*eval.Heuristic(start.Board), eval.Evaluate(start, rng))
}

func TestCornerScore(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want int
	}{
		{"top-left gradient", [][]int{{8, 4}, {4, 2}}, 4},
		{"bottom-right gradient", [][]int{{2, 4}, {4, 8}}, 4},
		{"checkerboard", [][]int{{2, 4}, {4, 2}}, 2},
		{"empty", [][]int{{0, 0, 0}, {0, 0, 0}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CornerScore(grid.MustFromRows(tt.rows)))
		})
	}
}

func TestHeuristicEmptyWeight(t *testing.T) {
	board := grid.MustFromRows([][]int{{0, 0}, {0, 2}})
	eval := Evaluator{EmptyWeight: DefaultEmptyWeight}
	require.Equal(t, float64(CornerScore(board))+3*DefaultEmptyWeight, eval.Heuristic(board))
}
