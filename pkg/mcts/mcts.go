package mcts

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
)

type TreeStats struct {
	maxdepth atomic.Int32
	cps      atomic.Uint32
	cycles   atomic.Uint32
}

// Result of a planning step
type Decision struct {
	Move     grid.Direction
	Source   DecisionSource
	AvgValue float64
	Visits   int32
}

func (d Decision) String() string {
	return fmt.Sprintf("Decision{Move=%v, Source=%v, Avg=%.1f, Visits=%d}", d.Move, d.Source, d.AvgValue, d.Visits)
}

// MCTS is one planning session over a snapshot of the game. The tree is
// discarded with Reset once the chosen move is committed, since the tile
// spawned by the real move is not known in advance.
type MCTS struct {
	TreeStats
	Root      *Node
	Limiter   LimiterLike
	listener  *StatsListener
	selection *UCB
	strategy  StrategyLike
	evaluator Evaluator
	config    Config
	size      atomic.Uint32

	// Expansion, tie-breaks and fallback moves
	seed int64
	rand *rand.Rand
	// One per rollout worker
	workerRands []*rand.Rand
}

// Create a planner rooted at a private copy of state
func NewMCTS(state grid.State, cfg Config) (*MCTS, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := state.Board.Validate(); err != nil {
		return nil, err
	}

	seed := SeedGeneratorFn()
	rng := rand.New(rand.NewSource(seed))
	mcts := &MCTS{
		Root:      newRootNode(state),
		Limiter:   NewLimiter(),
		listener:  &StatsListener{nCycles: 1},
		selection: NewUCB(cfg.ExplorationParam, rng),
		strategy:  DefaultBackprop{},
		evaluator: NewEvaluator(cfg),
		config:    cfg,
		seed:      seed,
		rand:      rng,
	}
	mcts.Limiter.SetLimits(DefaultLimits().SetCycles(DefaultCycles))
	mcts.size.Store(1)
	return mcts, nil
}

func (mcts *MCTS) invokeListener(f ListenerFunc) {
	if f != nil {
		f(toListenerStats(mcts))
	}
}

func (mcts *MCTS) ResetListener() {
	mcts.listener.OnCycle(nil).OnDepth(nil).OnStop(nil)
}

func (mcts *MCTS) StatsListener() *StatsListener {
	return mcts.listener
}

func (mcts *MCTS) SetListener(listener StatsListener) {
	*mcts.listener = listener
}

// Adds custom context to the limiter, enabling cancellation through it.
// Cancellation is noticed before the next iteration.
func (mcts *MCTS) SetContext(ctx context.Context) {
	mcts.Limiter.SetContext(ctx)
}

func (mcts *MCTS) SetStrategy(strategy StrategyLike) {
	if strategy != nil {
		mcts.strategy = strategy
	}
}

// Reseed every random source of the planner, the next searches are
// reproducible from seed alone when the budget is not time based
func (mcts *MCTS) SetSeed(seed int64) {
	mcts.seed = seed
	mcts.rand = rand.New(rand.NewSource(seed))
	mcts.selection.rng = mcts.rand
	mcts.workerRands = nil
}

func (mcts *MCTS) Config() Config {
	return mcts.config
}

// Stop the search before the next iteration
func (mcts *MCTS) Stop() {
	mcts.Limiter.SetStop(true)
}

// Maxiumum depth reached during the search
func (mcts *MCTS) MaxDepth() int {
	return int(mcts.maxdepth.Load())
}

// Total number of iterations ran during the search
func (mcts *MCTS) Cycles() int {
	return int(mcts.cycles.Load())
}

// Get cycles per second statistic
func (mcts *MCTS) Cps() uint32 {
	return mcts.cps.Load()
}

// Get the reason why the search was stopped, valid after search ends
func (mcts *MCTS) StopReason() StopReason {
	return mcts.Limiter.StopReason()
}

func (mcts *MCTS) SetLimits(limits *Limits) {
	mcts.Limiter.SetLimits(limits)
}

func (mcts *MCTS) Limits() *Limits {
	return mcts.Limiter.Limits()
}

// Number of nodes in the tree
func (mcts *MCTS) Size() uint32 {
	return mcts.size.Load()
}

// Count the nodes by walking the tree
func (mcts *MCTS) Count() int {
	return countTreeNodes(mcts.Root)
}

func (mcts *MCTS) String() string {
	return fmt.Sprintf("MCTS={Size=%d, Stats:{maxdepth=%d, cps=%d, cycles=%d}, Root=%v}",
		mcts.Size(), mcts.MaxDepth(), mcts.Cps(), mcts.Cycles(), mcts.Root)
}

// Discard the tree and start over from a private copy of state
func (mcts *MCTS) Reset(state grid.State) {
	mcts.Root = newRootNode(state)
	mcts.size.Store(1)
	mcts.maxdepth.Store(0)
	mcts.cycles.Store(0)
	mcts.cps.Store(0)
}

// Decide runs the search and picks the move to commit. The root's state is
// never modified. Returns grid.ErrNoLegalMoves if the root has no legal move.
func (mcts *MCTS) Decide() (Decision, error) {
	if mcts.Root.Terminal() {
		return Decision{Move: grid.NoDirection}, fmt.Errorf("decide: %w", grid.ErrNoLegalMoves)
	}
	mcts.Search()
	return mcts.Evaluate()
}

// Evaluate picks the root child chosen by the configured policy. If no child
// was simulated yet, it falls back to a uniformly random legal move.
func (mcts *MCTS) Evaluate() (Decision, error) {
	if best := mcts.BestChild(mcts.Root, mcts.config.Policy); best != nil {
		return Decision{
			Move:     best.Move,
			Source:   SourceSearch,
			AvgValue: best.AvgQ(),
			Visits:   best.N(),
		}, nil
	}

	legal := mcts.Root.State.LegalMoves()
	if len(legal) == 0 {
		return Decision{Move: grid.NoDirection}, fmt.Errorf("evaluate: %w", grid.ErrNoLegalMoves)
	}
	return Decision{
		Move:   legal[mcts.rand.Intn(len(legal))],
		Source: SourceFallback,
	}, nil
}

// Return best visited child, based on the policy, ties broken uniformly at random
func (mcts *MCTS) BestChild(node *Node, policy BestChildPolicy) *Node {
	var bestChild *Node
	var best float64
	ties := 0

	for i := range node.Children {
		child := &node.Children[i]
		if child.N() == 0 {
			continue
		}

		var value float64
		switch policy {
		case BestChildMostVisits:
			value = float64(child.N())
		default:
			value = child.AvgQ()
		}

		switch {
		case bestChild == nil || value > best:
			bestChild = child
			best = value
			ties = 1
		case value == best:
			ties++
			if mcts.rand.Intn(ties) == 0 {
				bestChild = child
			}
		}
	}

	return bestChild
}

// The principal variation from 'root', following the best child by policy
func (mcts *MCTS) Pv(root *Node, policy BestChildPolicy, includeRoot bool) []grid.Direction {
	if root == nil {
		return nil
	}

	pv := make([]grid.Direction, 0, mcts.MaxDepth()+1)
	if includeRoot && root.Move != grid.NoDirection {
		pv = append(pv, root.Move)
	}

	for node := mcts.BestChild(root, policy); node != nil; node = mcts.BestChild(node, policy) {
		pv = append(pv, node.Move)
	}
	return pv
}
