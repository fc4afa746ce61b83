package bench

/*
Batch experiment subpackage, plays a series of independent games with the
same kind of agent and aggregates their results.
*/

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/IlikeChooros/go-mcts-2048/pkg/agent"
	"github.com/IlikeChooros/go-mcts-2048/pkg/game"
	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

var ErrNoAgent = errors.New("arena has no agent factory")

// Builds the agent of one worker. Agents are not shared between workers.
type AgentFactory func(worker int, rng *rand.Rand) (agent.Agent, error)

type Arena struct {
	ArenaStats
	NewAgent AgentFactory
	NGames   int
	NWorkers int
	Height   int
	Width    int
	Scoring  grid.Scoring
	// Game i is seeded with Seed+i, zero draws a random base seed per run.
	// Worker w builds its agent with a source seeded by Seed-w-1, so a run
	// is reproducible when the factory seeds its agent from that source and
	// the agent's budget does not depend on wall-clock time.
	Seed int64
}

func NewArena(newAgent AgentFactory) *Arena {
	return &Arena{
		NewAgent: newAgent,
		NGames:   100,
		NWorkers: 2,
		Height:   4,
		Width:    4,
		Scoring:  grid.ScoringIncremental,
	}
}

func (a *Arena) Setup(nGames, nWorkers int) *Arena {
	a.NGames = max(0, nGames)
	a.NWorkers = max(1, nWorkers)
	return a
}

// Run plays NGames games split between NWorkers workers and returns the
// records ordered by game number. If ctx is cancelled, the games finished so
// far are returned along with the context error.
func (a *Arena) Run(ctx context.Context, listener ListenerLike) (Summary, []Record, error) {
	if a.NewAgent == nil {
		return Summary{}, nil, ErrNoAgent
	}
	if listener == nil {
		listener = NopListener{}
	}
	if _, err := grid.NewBoard(a.Height, a.Width); err != nil {
		return Summary{}, nil, err
	}

	a.reset()
	seed := a.Seed
	if seed == 0 {
		seed = int64(frand.Uint64n(math.MaxInt32))
	}
	workers := max(1, min(a.NWorkers, a.NGames))

	// Every agent is built before the first game starts
	agents := make([]agent.Agent, workers)
	for w := range workers {
		ag, err := a.NewAgent(w, rand.New(rand.NewSource(seed-int64(w)-1)))
		if err != nil {
			return Summary{}, nil, fmt.Errorf("worker %d: %w", w, err)
		}
		agents[w] = ag
	}
	agentName := agents[0].Name()

	results := make([][]Record, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w, ag := range agents {
		g.Go(func() error {
			records, err := a.worker(gctx, w, workers, seed, ag, listener)
			results[w] = records
			return err
		})
	}
	err := g.Wait()

	records := slices.Concat(results...)
	slices.SortFunc(records, func(x, y Record) int { return x.Game - y.Game })
	summary := Summarize(agentName, workers, records)

	log.Debug().
		Int("games", summary.Games).
		Float64("mean_score", summary.MeanScore).
		Int("max_tile", summary.MaxHighestTile).
		Msg("arena finished")
	return summary, records, err
}

// Worker w plays games w, w+workers, ...
func (a *Arena) worker(ctx context.Context, id, workers int, seed int64, ag agent.Agent, listener ListenerLike) ([]Record, error) {
	records := make([]Record, 0, a.NGames/workers+1)
	info := WorkerInfo{WorkerID: id, NGames: a.NGames}

	for i := id; i < a.NGames; i += workers {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		record, err := a.playGame(ctx, i, seed+int64(i), ag, listener, info)
		if err != nil {
			return records, err
		}
		records = append(records, record)
		a.recordGame(record.Score)

		info.FinishedGames = a.Finished()
		listener.OnFinishedGame(info, record)
	}

	log.Debug().Int("worker", id).Int("games", len(records)).Msg("worker done")
	info.FinishedGames = a.Finished()
	listener.OnFinishedWork(info)
	return records, nil
}

func (a *Arena) playGame(ctx context.Context, n int, seed int64, ag agent.Agent, listener ListenerLike, info WorkerInfo) (Record, error) {
	start := time.Now()
	g, err := game.New(a.Height, a.Width, a.Scoring, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Record{}, err
	}

	info.Game = n
	listener.OnGameStart(info)
	res, err := agent.Play(ctx, g, ag, func(turn agent.Turn) {
		a.moves.Add(1)
		info.GameMoveNum = turn.Number
		info.LastMove = turn.Direction
		info.Score = turn.Score
		info.HighestTile = turn.Highest
		listener.OnMoveMade(info)
	})
	if err != nil {
		return Record{}, fmt.Errorf("game %d: %w", n, err)
	}

	return Record{
		Game:        n,
		Agent:       ag.Name(),
		Seed:        seed,
		Height:      a.Height,
		Width:       a.Width,
		Scoring:     a.Scoring.String(),
		Score:       res.Score,
		HighestTile: res.HighestTile,
		Moves:       res.Moves,
		DurationMs:  time.Since(start).Milliseconds(),
	}, nil
}
