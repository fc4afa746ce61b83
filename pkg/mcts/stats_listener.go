package mcts

import (
	"slices"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
)

// One root move with its statistics and the principal variation behind it
type SearchLine struct {
	Move   grid.Direction
	Visits int32
	Eval   float64
	Pv     []grid.Direction
}

type ListenerTreeStats struct {
	Maxdepth   int
	Cycles     int
	TimeMs     int
	Cps        uint32
	Size       uint32
	Lines      []SearchLine
	StopReason StopReason
}

// Convert the tree's state to 'ListenerTreeStats', root moves sorted by visits
func toListenerStats(tree *MCTS) ListenerTreeStats {
	children := make([]*Node, 0, len(tree.Root.Children))
	for i := range tree.Root.Children {
		if tree.Root.Children[i].N() > 0 {
			children = append(children, &tree.Root.Children[i])
		}
	}
	slices.SortStableFunc(children, func(a, b *Node) int {
		return int(b.N() - a.N())
	})

	lines := make([]SearchLine, len(children))
	for i, child := range children {
		lines[i] = SearchLine{
			Move:   child.Move,
			Visits: child.N(),
			Eval:   child.AvgQ(),
			Pv:     tree.Pv(child, BestChildMostVisits, true),
		}
	}

	return ListenerTreeStats{
		Lines:      lines,
		Maxdepth:   tree.MaxDepth(),
		Cycles:     tree.Cycles(),
		TimeMs:     int(tree.Limiter.Elapsed()),
		Cps:        tree.Cps(),
		Size:       tree.Size(),
		StopReason: tree.Limiter.StopReason(),
	}
}

// Listener function callback, will recieve current tree statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc func(ListenerTreeStats)

type StatsListener struct {
	// called when 'max depth' increases
	onDepth ListenerFunc

	// called every N full iterations
	onCycle ListenerFunc
	nCycles int

	// called when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nCycles: 1}
}

// Attach new on max depth change callback, called by the search goroutine
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach new on iteration callback, building the stats walks the tree,
// so keep the interval large
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	listener.nCycles = max(n, 1)
	return listener
}

// Attach 'on search end' callback, called once,
// makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeCycle(tree *MCTS) {
	if listener.onCycle != nil && tree.Cycles()%listener.nCycles == 0 {
		listener.onCycle(toListenerStats(tree))
	}
}
