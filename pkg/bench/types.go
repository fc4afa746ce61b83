package bench

import (
	"encoding/json"
	"sync/atomic"
)

// One finished game
type Record struct {
	Game        int    `json:"game" parquet:"game"`
	Agent       string `json:"agent" parquet:"agent,dict"`
	Seed        int64  `json:"seed" parquet:"seed"`
	Height      int    `json:"height" parquet:"height"`
	Width       int    `json:"width" parquet:"width"`
	Scoring     string `json:"scoring" parquet:"scoring,dict"`
	Score       int    `json:"score" parquet:"score"`
	HighestTile int    `json:"highest_tile" parquet:"highest_tile"`
	Moves       int    `json:"moves" parquet:"moves"`
	DurationMs  int64  `json:"duration_ms" parquet:"duration_ms"`
}

type Summary struct {
	Games           int     `json:"games"`
	Agent           string  `json:"agent"`
	Workers         int     `json:"workers"`
	MeanScore       float64 `json:"mean_score"`
	MaxScore        int     `json:"max_score"`
	MeanHighestTile float64 `json:"mean_highest_tile"`
	MaxHighestTile  int     `json:"max_highest_tile"`
	MeanMoves       float64 `json:"mean_moves"`
	// Number of games that reached each highest tile
	TileCounts map[int]int `json:"tile_counts"`
}

func (s Summary) String() string {
	data, _ := json.Marshal(s)
	return string(data)
}

// Summarize aggregates the records of one agent
func Summarize(agent string, workers int, records []Record) Summary {
	s := Summary{
		Games:      len(records),
		Agent:      agent,
		Workers:    workers,
		TileCounts: make(map[int]int),
	}
	if len(records) == 0 {
		return s
	}

	var score, tile, moves int
	for _, r := range records {
		score += r.Score
		tile += r.HighestTile
		moves += r.Moves
		s.MaxScore = max(s.MaxScore, r.Score)
		s.MaxHighestTile = max(s.MaxHighestTile, r.HighestTile)
		s.TileCounts[r.HighestTile]++
	}

	n := float64(len(records))
	s.MeanScore = float64(score) / n
	s.MeanHighestTile = float64(tile) / n
	s.MeanMoves = float64(moves) / n
	return s
}

// Live counters shared by the workers of a run
type ArenaStats struct {
	finished atomic.Uint32
	moves    atomic.Uint64
	best     atomic.Int64
}

func (as *ArenaStats) Finished() int {
	return int(as.finished.Load())
}

// Moves committed across all games so far
func (as *ArenaStats) Moves() int {
	return int(as.moves.Load())
}

// Best final score so far
func (as *ArenaStats) BestScore() int {
	return int(as.best.Load())
}

func (as *ArenaStats) reset() {
	as.finished.Store(0)
	as.moves.Store(0)
	as.best.Store(0)
}

func (as *ArenaStats) recordGame(score int) {
	for {
		best := as.best.Load()
		if int64(score) <= best || as.best.CompareAndSwap(best, int64(score)) {
			break
		}
	}
	as.finished.Add(1)
}
