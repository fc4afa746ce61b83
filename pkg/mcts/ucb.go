package mcts

import (
	"math"
	"math/rand"
)

// UCB selection:
//
//	avg(child) + 2k * sqrt(2 * ln(N(parent)) / N(child))
//
// An unvisited child scores +Inf. Equal scores are broken uniformly at random.
type UCB struct {
	ExplorationParam float64
	rng              *rand.Rand
}

func NewUCB(explorationParam float64, rng *rand.Rand) *UCB {
	return &UCB{ExplorationParam: max(0, explorationParam), rng: rng}
}

// Score of child under a parent visited parentVisits times
func (u *UCB) Score(parentVisits int32, child *Node) float64 {
	visits := child.N()
	if visits == 0 {
		return math.Inf(1)
	}
	lnParent := math.Log(float64(max(parentVisits, 1)))
	return child.AvgQ() + 2*u.ExplorationParam*math.Sqrt(2*lnParent/float64(visits))
}

// Select the most promising child of an expanded parent, nil if it has none
func (u *UCB) Select(parent *Node) *Node {
	if len(parent.Children) == 0 {
		return nil
	}

	best := math.Inf(-1)
	index := 0
	ties := 0
	parentVisits := parent.N()

	for i := range parent.Children {
		score := u.Score(parentVisits, &parent.Children[i])
		switch {
		case score > best:
			best = score
			index = i
			ties = 1
		case score == best:
			// Reservoir sampling over the tied children
			ties++
			if u.rng.Intn(ties) == 0 {
				index = i
			}
		}
	}

	return &parent.Children[index]
}
