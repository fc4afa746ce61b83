// Package agent holds the move choosers that can drive a game session,
// from baselines to the tree search planner.
package agent

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-mcts-2048/pkg/game"
	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/rs/zerolog/log"
)

// Returned when an agent picks a move that does not change the board
var ErrIllegalMove = errors.New("agent chose a move that does not change the board")

type Agent interface {
	Name() string
	// Choose a move for the current position of g, without modifying g.
	// Returns grid.ErrNoLegalMoves if the game is over.
	Choose(ctx context.Context, g *game.Game) (grid.Direction, error)
}

// A committed move, reported to Play's callback
type Turn struct {
	Number    int
	Direction grid.Direction
	Score     int
	Highest   int
}

// Random picks a uniformly random legal move
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return "random" }

func (r *Random) Choose(_ context.Context, g *game.Game) (grid.Direction, error) {
	legal := g.LegalMoves()
	if len(legal) == 0 {
		return grid.NoDirection, grid.ErrNoLegalMoves
	}
	return legal[r.rng.Intn(len(legal))], nil
}

// Corner keeps the big tiles in the top left corner: it plays the first
// legal move of Up, Left, Right, Down
type Corner struct{}

var CornerPriority = [4]grid.Direction{grid.Up, grid.Left, grid.Right, grid.Down}

func (Corner) Name() string { return "corner" }

func (Corner) Choose(_ context.Context, g *game.Game) (grid.Direction, error) {
	board := g.Board()
	for _, dir := range CornerPriority {
		if grid.CanMove(board, dir) {
			return dir, nil
		}
	}
	return grid.NoDirection, grid.ErrNoLegalMoves
}

// Play lets agent drive g until no move is left, calling onMove (if not nil)
// after every committed move. Cancelling ctx stops the game between moves.
func Play(ctx context.Context, g *game.Game, agent Agent, onMove func(Turn)) (game.Result, error) {
	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return g.Result(), err
		}

		dir, err := agent.Choose(ctx, g)
		if errors.Is(err, grid.ErrNoLegalMoves) {
			break
		}
		if err != nil {
			return g.Result(), fmt.Errorf("%s: %w", agent.Name(), err)
		}

		changed, err := g.Move(dir)
		if err != nil {
			return g.Result(), fmt.Errorf("%s: %w", agent.Name(), err)
		}
		if !changed {
			return g.Result(), fmt.Errorf("%s: %v: %w", agent.Name(), dir, ErrIllegalMove)
		}

		if onMove != nil {
			onMove(Turn{
				Number:    g.Moves(),
				Direction: dir,
				Score:     g.Score(),
				Highest:   g.HighestTile(),
			})
		}
	}

	res := g.Result()
	log.Debug().
		Str("agent", agent.Name()).
		Int("score", res.Score).
		Int("highest", res.HighestTile).
		Int("moves", res.Moves).
		Msg("game over")
	return res, nil
}
