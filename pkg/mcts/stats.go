package mcts

// Number of simulations and cumulative simulation value of a node.
// Only the coordinating search goroutine writes to it.
type NodeStats struct {
	q float64
	n int32
}

// Average value of the simulations through this node, 0 if never visited
func (stats *NodeStats) AvgQ() float64 {
	if stats.n == 0 {
		return 0
	}
	return stats.q / float64(stats.n)
}

// Cumulated simulation value
func (stats *NodeStats) Q() float64 {
	return stats.q
}

// Get number of simulations through this node
func (stats *NodeStats) N() int32 {
	return stats.n
}

// Record one simulation with the given value
func (stats *NodeStats) Add(value float64) {
	stats.q += value
	stats.n++
}
