package grid

import (
	"fmt"
	"strings"
)

// Scoring is the score accounting policy of a game session. It is fixed for
// the whole session and applies to live and speculative moves alike.
type Scoring int

const (
	// Add the value of every tile created by a merge
	ScoringIncremental Scoring = iota
	// Score is the sum of all tiles after every move
	ScoringTileSum
	// Score is the sum of log2(tile) over all tiles after every move
	ScoringLog2Sum
)

func (s Scoring) String() string {
	switch s {
	case ScoringIncremental:
		return "incremental"
	case ScoringTileSum:
		return "sum"
	case ScoringLog2Sum:
		return "log2"
	}
	return fmt.Sprintf("Scoring(%d)", int(s))
}

func ParseScoring(s string) (Scoring, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "incremental", "classic", "0":
		return ScoringIncremental, nil
	case "sum", "tile-sum", "1":
		return ScoringTileSum, nil
	case "log2", "log2-sum", "2":
		return ScoringLog2Sum, nil
	}
	return ScoringIncremental, fmt.Errorf("unknown scoring policy %q", s)
}

// Apply returns the score after a move with merge delta that produced b,
// given the score before the move
func (s Scoring) Apply(prev, delta int, b Board) int {
	switch s {
	case ScoringTileSum:
		return b.SumTiles()
	case ScoringLog2Sum:
		return b.SumLog2Tiles()
	default:
		return prev + delta
	}
}

// Score of a starting position: zero for incremental accounting, the
// recomputed value otherwise
func (s Scoring) Initial(b Board) int {
	return s.Apply(0, 0, b)
}
