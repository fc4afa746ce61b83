package agent

import (
	"context"

	"github.com/IlikeChooros/go-mcts-2048/pkg/game"
	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/IlikeChooros/go-mcts-2048/pkg/mcts"
	"github.com/rs/zerolog/log"
)

// Planner searches a fresh tree every turn and commits the best root move
type Planner struct {
	config   mcts.Config
	limits   mcts.Limits
	listener *mcts.StatsListener
	tree     *mcts.MCTS
	seed     *int64
}

// NewPlanner with the given budget, a nil limits means mcts.DefaultCycles
// iterations per move
func NewPlanner(cfg mcts.Config, limits *mcts.Limits) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if limits == nil {
		limits = mcts.DefaultLimits().SetCycles(mcts.DefaultCycles)
	}
	return &Planner{config: cfg, limits: *limits}, nil
}

func (p *Planner) Name() string { return "mcts" }

// Seed the planner's random sources, by default they come from
// mcts.SeedGeneratorFn
func (p *Planner) SetSeed(seed int64) {
	p.seed = &seed
	if p.tree != nil {
		p.tree.SetSeed(seed)
	}
}

// Attach a listener to every search this planner runs
func (p *Planner) SetListener(listener mcts.StatsListener) {
	p.listener = &listener
}

func (p *Planner) Choose(ctx context.Context, g *game.Game) (grid.Direction, error) {
	state := g.State()
	if p.tree == nil {
		tree, err := mcts.NewMCTS(state, p.config)
		if err != nil {
			return grid.NoDirection, err
		}
		if p.seed != nil {
			tree.SetSeed(*p.seed)
		}
		p.tree = tree
	} else {
		p.tree.Reset(state)
	}

	limits := p.limits
	p.tree.SetLimits(&limits)
	p.tree.SetContext(ctx)
	if p.listener != nil {
		p.tree.SetListener(*p.listener)
	}

	decision, err := p.tree.Decide()
	if err != nil {
		return grid.NoDirection, err
	}

	log.Debug().
		Stringer("move", decision.Move).
		Stringer("source", decision.Source).
		Float64("avg", decision.AvgValue).
		Int32("visits", decision.Visits).
		Int("cycles", p.tree.Cycles()).
		Uint32("size", p.tree.Size()).
		Msg("planner decision")
	return decision.Move, nil
}
