package mcts

import (
	"math"
	"math/rand"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// One rollout to run: where to start it and which nodes get its value
type simulation struct {
	path  []*Node
	start grid.State
}

// This function only sets the limits, resets the counters, and the stop flag
// doesn't actually start the search
func (mcts *MCTS) setupSearch() {
	mcts.Limiter.Reset()
	mcts.cps.Store(0)
	mcts.cycles.Store(0)

	threads := max(1, mcts.Limiter.Limits().NThreads)
	for len(mcts.workerRands) < threads {
		mcts.workerRands = append(mcts.workerRands,
			rand.New(rand.NewSource(mcts.seed+int64(len(mcts.workerRands)+1))))
	}
}

// Search grows the tree until a limit is reached, by repeating:
//
// 1. selection - descend by UCB to a node that is not expanded yet, or is terminal
//
// 2. expansion - materialize the node's successors
//
// 3. simulation - random playouts, see Config.Simulation
//
// 4. backpropagation - add each playout's value to every node on its path
//
// Limits are checked before every iteration, an iteration in progress always finishes.
func (mcts *MCTS) Search() {
	mcts.setupSearch()

	if mcts.Root.Terminal() {
		mcts.Limiter.EvaluateStopReason(mcts.Size(), uint32(mcts.MaxDepth()), uint32(mcts.Cycles()))
		mcts.invokeListener(mcts.listener.onStop)
		return
	}

	for mcts.Limiter.Ok(mcts.Size(), uint32(mcts.MaxDepth()), uint32(mcts.Cycles())) {
		path := mcts.Selection()
		leaf := path[len(path)-1]

		if !leaf.Terminal() && !leaf.Expanded() {
			mcts.size.Add(leaf.Expand(mcts.rand))
		}

		sims := mcts.simulations(path)
		values := mcts.rollouts(sims)
		for i := range sims {
			mcts.strategy.Backpropagate(sims[i].path, values[i])
			mcts.updateDepth(len(sims[i].path) - 1)
		}

		// Increment cycle count and store the cps
		mcts.cycles.Add(1)
		mcts.cps.Store(cyclesPerSecond(mcts.Cycles(), mcts.Limiter.Elapsed()))
		mcts.listener.invokeCycle(mcts)
	}

	mcts.Limiter.EvaluateStopReason(mcts.Size(), uint32(mcts.MaxDepth()), uint32(mcts.Cycles()))
	log.Debug().
		Int("cycles", mcts.Cycles()).
		Uint32("size", mcts.Size()).
		Int("maxdepth", mcts.MaxDepth()).
		Stringer("reason", mcts.StopReason()).
		Msg("search stopped")
	mcts.invokeListener(mcts.listener.onStop)
}

// Descend from the root to the most promising node that is not expanded or
// is terminal, returns the path root..node
func (mcts *MCTS) Selection() []*Node {
	path := make([]*Node, 1, mcts.MaxDepth()+2)
	path[0] = mcts.Root

	node := mcts.Root
	for node.Expanded() && !node.Terminal() {
		node = mcts.selection.Select(node)
		path = append(path, node)
	}
	return path
}

// Rollouts owed to the selected leaf at the end of path. A terminal leaf is
// played out from its own state, which takes zero moves and yields its
// current value, and its path is still backpropagated.
func (mcts *MCTS) simulations(path []*Node) []simulation {
	leaf := path[len(path)-1]

	if !leaf.Terminal() && mcts.config.Simulation == SimulateNewChildren {
		sims := make([]simulation, len(leaf.Children))
		for i := range leaf.Children {
			childPath := make([]*Node, len(path)+1)
			copy(childPath, path)
			childPath[len(path)] = &leaf.Children[i]
			sims[i] = simulation{path: childPath, start: leaf.Children[i].State}
		}
		return sims
	}

	// Flat variant, one playout of the leaf per worker
	n := 1
	if !leaf.Terminal() {
		n = max(1, mcts.Limiter.Limits().NThreads)
	}
	sims := make([]simulation, n)
	for i := range sims {
		sims[i] = simulation{path: path, start: leaf.State}
	}
	return sims
}

// Run the playouts of one wave. With more than one thread, worker w plays
// sims w, w+threads, ... on its own random source; the values are returned
// in sims order and only the caller touches the tree.
func (mcts *MCTS) rollouts(sims []simulation) []float64 {
	values := make([]float64, len(sims))
	threads := min(max(1, mcts.Limiter.Limits().NThreads), len(sims), len(mcts.workerRands))

	if threads <= 1 {
		for i := range sims {
			values[i] = mcts.evaluator.Evaluate(sims[i].start, mcts.workerRands[0])
		}
		return values
	}

	var g errgroup.Group
	for w := range threads {
		rng := mcts.workerRands[w]
		g.Go(func() error {
			for i := w; i < len(sims); i += threads {
				values[i] = mcts.evaluator.Evaluate(sims[i].start, rng)
			}
			return nil
		})
	}
	_ = g.Wait()
	return values
}

// Clamped to the uint32 range, long searches overflow a plain product
func cyclesPerSecond(cycles int, elapsedMs uint32) uint32 {
	cps := uint64(cycles) * 1000 / uint64(max(elapsedMs, 1))
	return uint32(min(cps, math.MaxUint32))
}

func (mcts *MCTS) updateDepth(depth int) {
	if int32(depth) > mcts.maxdepth.Load() {
		mcts.maxdepth.Store(int32(depth))
		mcts.invokeListener(mcts.listener.onDepth)
	}
}
