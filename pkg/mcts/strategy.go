package mcts

type StrategyLike interface {
	Backpropagate(path []*Node, value float64)
}

// 2048 is a single player game, so every node on the path is credited
// with the same value
type DefaultBackprop struct{}

func (DefaultBackprop) Backpropagate(path []*Node, value float64) {
	for _, node := range path {
		node.Add(value)
	}
}
