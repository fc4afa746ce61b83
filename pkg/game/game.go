// Package game holds a live 2048 session: the authoritative board, its score
// under a fixed scoring policy and the number of turns played.
package game

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
)

// Final numbers of a session, exported for aggregation across games
type Result struct {
	Score       int `json:"score"`
	HighestTile int `json:"highest_tile"`
	Moves       int `json:"moves"`
}

type Game struct {
	state grid.State
	moves int
	rng   *rand.Rand
}

// New starts a game on an empty height x width board with two spawned tiles
func New(height, width int, scoring grid.Scoring, rng *rand.Rand) (*Game, error) {
	board, err := grid.NewBoard(height, width)
	if err != nil {
		return nil, err
	}

	// A 1x1 board only has room for one tile
	spawns := min(2, height*width)
	for range spawns {
		if err := grid.NewTile(&board, rng); err != nil {
			return nil, err
		}
	}

	return &Game{
		state: grid.State{Board: board, Score: scoring.Initial(board), Scoring: scoring},
		rng:   rng,
	}, nil
}

// FromBoard starts a game on a copy of the given position
func FromBoard(board grid.Board, scoring grid.Scoring, rng *rand.Rand) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	board = board.Clone()
	return &Game{
		state: grid.State{Board: board, Score: scoring.Initial(board), Scoring: scoring},
		rng:   rng,
	}, nil
}

// Copy of the current board
func (g *Game) Board() grid.Board {
	return g.state.Board.Clone()
}

func (g *Game) Score() int {
	return g.state.Score
}

func (g *Game) Scoring() grid.Scoring {
	return g.state.Scoring
}

// Snapshot of the game state, safe to explore without touching the game
func (g *Game) State() grid.State {
	return g.state.Clone()
}

func (g *Game) LegalMoves() []grid.Direction {
	return g.state.LegalMoves()
}

func (g *Game) HighestTile() int {
	return g.state.Board.HighestTile()
}

// IsOver reports whether no direction changes the board
func (g *Game) IsOver() bool {
	return g.state.Terminal()
}

// Number of moves that changed the board
func (g *Game) Moves() int {
	return g.moves
}

// Move commits dir to the live board. A move that changes nothing returns
// false, spawns no tile and is not counted as a turn.
func (g *Game) Move(dir grid.Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("move %v: invalid direction", dir)
	}

	delta, changed, err := grid.ApplyMove(&g.state.Board, dir, g.rng)
	if err != nil {
		return changed, fmt.Errorf("move %v: %w", dir, err)
	}
	if !changed {
		return false, nil
	}

	g.state.Score = g.state.Scoring.Apply(g.state.Score, delta, g.state.Board)
	g.moves++
	return true, nil
}

func (g *Game) Result() Result {
	return Result{
		Score:       g.Score(),
		HighestTile: g.HighestTile(),
		Moves:       g.moves,
	}
}

func (g *Game) String() string {
	return fmt.Sprintf("Score: %d, Moves: %d\n%s", g.Score(), g.moves, g.state.Board)
}
