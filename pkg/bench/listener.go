package bench

import "github.com/IlikeChooros/go-mcts-2048/pkg/grid"

// Progress of one worker, passed to the listener
type WorkerInfo struct {
	WorkerID      int
	Game          int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	LastMove      grid.Direction
	Score         int
	HighestTile   int
}

// Callbacks of a run. Workers call them concurrently, implementations must
// be safe for that.
type ListenerLike interface {
	OnGameStart(info WorkerInfo)
	OnMoveMade(info WorkerInfo)
	OnFinishedGame(info WorkerInfo, record Record)
	OnFinishedWork(info WorkerInfo)
}

type NopListener struct{}

func (NopListener) OnGameStart(WorkerInfo)            {}
func (NopListener) OnMoveMade(WorkerInfo)             {}
func (NopListener) OnFinishedGame(WorkerInfo, Record) {}
func (NopListener) OnFinishedWork(WorkerInfo)         {}

var _ ListenerLike = NopListener{}
