package grid

import "math/rand"

// State is a board together with the score accumulated on it, the unit the
// planner snapshots and advances
type State struct {
	Board   Board
	Score   int
	Scoring Scoring
}

// Successor state after dir, false if dir is a no-op. s is not modified.
func (s State) Successor(dir Direction, rng *rand.Rand) (State, bool) {
	out, ok := Successor(s.Board, dir, rng)
	if !ok {
		return State{}, false
	}
	return State{
		Board:   out.Board,
		Score:   s.Scoring.Apply(s.Score, out.Delta, out.Board),
		Scoring: s.Scoring,
	}, true
}

func (s State) LegalMoves() []Direction {
	return FastLegalMoves(s.Board)
}

func (s State) Terminal() bool {
	return Terminal(s.Board)
}

// Deep copy
func (s State) Clone() State {
	return State{Board: s.Board.Clone(), Score: s.Score, Scoring: s.Scoring}
}
