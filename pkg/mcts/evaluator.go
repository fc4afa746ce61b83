package mcts

import (
	"math/rand"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
)

// Evaluator turns a random playout into a node value
type Evaluator struct {
	Value           RolloutValue
	HeuristicWeight float64
	EmptyWeight     float64
}

func NewEvaluator(cfg Config) Evaluator {
	return Evaluator{
		Value:           cfg.RolloutValue,
		HeuristicWeight: cfg.HeuristicWeight,
		EmptyWeight:     cfg.EmptyWeight,
	}
}

// Evaluate plays start out to game over and returns its value, plus the
// weighted heuristic of the starting board. start is not modified.
func (e Evaluator) Evaluate(start grid.State, rng *rand.Rand) float64 {
	final := Rollout(start, rng)

	var value float64
	switch e.Value {
	case RolloutHighestTile:
		value = float64(final.Board.HighestTile())
	default:
		value = float64(final.Score)
	}

	if e.HeuristicWeight != 0 {
		value += e.HeuristicWeight * e.Heuristic(start.Board)
	}
	return value
}

// Heuristic rewards boards whose tiles grow toward one corner, plus
// EmptyWeight per empty cell
func (e Evaluator) Heuristic(b grid.Board) float64 {
	return float64(CornerScore(b)) + e.EmptyWeight*float64(b.CountEmpty())
}

// CornerScore counts the adjacent cell pairs ordered toward a corner
// (the cell nearer the corner is not smaller), for the best of the four corners
func CornerScore(b grid.Board) int {
	best := 0
	for _, toTop := range []bool{true, false} {
		for _, toLeft := range []bool{true, false} {
			best = max(best, cornerScore(b, toTop, toLeft))
		}
	}
	return best
}

func cornerScore(b grid.Board, toTop, toLeft bool) int {
	score := 0
	for r := range b.Height() {
		for c := range b.Width() {
			cur := b.Get(r, c)
			if c+1 < b.Width() && ordered(cur, b.Get(r, c+1), toLeft) {
				score++
			}
			if r+1 < b.Height() && ordered(cur, b.Get(r+1, c), toTop) {
				score++
			}
		}
	}
	return score
}

// first precedes second along a line; when the corner is on first's side
// it must not be smaller
func ordered(first, second int, cornerFirst bool) bool {
	if cornerFirst {
		return first >= second
	}
	return first <= second
}

// Rollout plays uniformly random legal moves from a private copy of start
// until no move changes the board, and returns the final state
func Rollout(start grid.State, rng *rand.Rand) grid.State {
	state := start.Clone()
	var buf [len(grid.Directions)]grid.Direction

	for {
		legal := buf[:0]
		for _, dir := range grid.Directions {
			if grid.CanMove(state.Board, dir) {
				legal = append(legal, dir)
			}
		}
		if len(legal) == 0 {
			return state
		}

		dir := legal[rng.Intn(len(legal))]
		delta, changed, err := grid.ApplyMove(&state.Board, dir, rng)
		if err != nil || !changed {
			// CanMove said otherwise, the engine is broken
			panic("mcts: rollout move " + dir.String() + " did not apply")
		}
		state.Score = state.Scoring.Apply(state.Score, delta, state.Board)
	}
}
