package agent

import (
	"context"
	"math/rand"
	"os"
	"testing"

	"github.com/IlikeChooros/go-mcts-2048/pkg/game"
	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/IlikeChooros/go-mcts-2048/pkg/mcts"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	os.Exit(m.Run())
}

func fromRows(t *testing.T, rows [][]int) *game.Game {
	t.Helper()
	g, err := game.FromBoard(grid.MustFromRows(rows), grid.ScoringIncremental, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return g
}

func TestCornerPriority(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want grid.Direction
	}{
		{"up first", [][]int{{0, 0}, {2, 0}}, grid.Up},
		// Up and Down are no-ops, Left is next
		{"left", [][]int{{0, 2}, {0, 4}}, grid.Left},
		// Up and Left are no-ops
		{"right", [][]int{{2, 0}, {4, 0}}, grid.Right},
		{"down", [][]int{{2, 4}, {0, 0}}, grid.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := Corner{}.Choose(context.Background(), fromRows(t, tt.rows))
			require.NoError(t, err)
			require.Equal(t, tt.want, dir)
		})
	}
}

func TestAgentsOnFinishedGame(t *testing.T) {
	rows := [][]int{{2, 4}, {4, 2}}
	agents := []Agent{NewRandom(rand.New(rand.NewSource(1))), Corner{}}

	for _, a := range agents {
		_, err := a.Choose(context.Background(), fromRows(t, rows))
		require.ErrorIs(t, err, grid.ErrNoLegalMoves, a.Name())
	}

	planner, err := NewPlanner(mcts.DefaultConfig(), nil)
	require.NoError(t, err)
	_, err = planner.Choose(context.Background(), fromRows(t, rows))
	require.ErrorIs(t, err, grid.ErrNoLegalMoves)
}

func TestRandomChoosesLegal(t *testing.T) {
	r := NewRandom(rand.New(rand.NewSource(3)))
	g := fromRows(t, [][]int{{2, 0}, {4, 0}})

	for range 20 {
		dir, err := r.Choose(context.Background(), g)
		require.NoError(t, err)
		require.Equal(t, grid.Right, dir)
	}
}

func TestPlayToGameOver(t *testing.T) {
	planner, err := NewPlanner(mcts.DefaultConfig(), mcts.DefaultLimits().SetCycles(10))
	require.NoError(t, err)

	agents := []Agent{NewRandom(rand.New(rand.NewSource(1))), Corner{}, planner}
	for _, a := range agents {
		t.Run(a.Name(), func(t *testing.T) {
			g, err := game.New(3, 3, grid.ScoringIncremental, rand.New(rand.NewSource(5)))
			require.NoError(t, err)

			turns := 0
			res, err := Play(context.Background(), g, a, func(turn Turn) {
				turns++
				require.Equal(t, turns, turn.Number)
			})
			require.NoError(t, err)
			require.True(t, g.IsOver())
			require.Equal(t, turns, res.Moves)
			require.Equal(t, g.Score(), res.Score)
			require.GreaterOrEqual(t, res.HighestTile, 4)
		})
	}
}

func TestPlayCancelled(t *testing.T) {
	g, err := game.New(4, 4, grid.ScoringIncremental, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	res, err := Play(ctx, g, Corner{}, func(turn Turn) {
		if turn.Number == 3 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 3, res.Moves)
}

type stubborn struct{}

func (stubborn) Name() string { return "stubborn" }
func (stubborn) Choose(context.Context, *game.Game) (grid.Direction, error) {
	return grid.Up, nil
}

func TestPlayRejectsNoOp(t *testing.T) {
	g := fromRows(t, [][]int{{2, 4}, {0, 0}})
	_, err := Play(context.Background(), g, stubborn{}, nil)
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Zero(t, g.Moves())
}

func TestNewByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range Names {
		a, err := New(name, mcts.DefaultConfig(), nil, rng)
		require.NoError(t, err)
		require.Equal(t, name, a.Name())
	}

	_, err := New("minimax", mcts.DefaultConfig(), nil, rng)
	require.ErrorIs(t, err, ErrUnknownAgent)
}
