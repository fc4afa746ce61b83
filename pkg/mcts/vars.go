package mcts

import (
	"math"

	"lukechampine.com/frand"
)

// Exploration parameter k used in the UCB formula, higher values increase exploration
// while lower values increase exploitation. Child values are raw game scores, not
// win rates, so k is on the same scale as a typical playout score.
var ExplorationParam float64 = 8000 / math.Sqrt2

// Iterations per decision when no budget is given
const DefaultCycles uint32 = 50

// Suggested wall-clock budget per decision, in milliseconds
const DefaultMovetime int = 100

// Bonus per empty cell in the corner heuristic
const DefaultEmptyWeight float64 = 5

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return int64(frand.Uint64n(math.MaxInt64))
}

// Set custom seed generator function for random number generators in MCTS,
// by default draws from a cryptographically seeded source
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

const (
	// When choosing the best child, choose the one with the highest average value,
	// this is how the planner commits its move
	BestChildAverage BestChildPolicy = iota

	// Choose the child with most visits
	BestChildMostVisits
)
