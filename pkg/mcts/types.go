package mcts

import (
	"fmt"
	"strings"
)

// Other types, which didn't fit to MCTS or Node files

type BestChildPolicy int
type SeedGeneratorFnType func() int64

// What a finished rollout is worth
type RolloutValue int

// Which nodes are played out after an expansion
type Simulation int

// Where a decision came from
type DecisionSource int

const (
	// Final accumulated score of the playout, under the session's scoring policy
	RolloutScore RolloutValue = iota
	// Highest tile on the board at the end of the playout
	RolloutHighestTile
)

const (
	// Roll out every child created by the expansion, one backpropagation per child
	SimulateNewChildren Simulation = iota
	// Flat variant: roll out the selected node itself
	SimulateSelected
)

const (
	SourceSearch DecisionSource = iota
	// The budget ran out before the root had a visited child, the move is a
	// uniformly random legal one
	SourceFallback
)

func (v RolloutValue) String() string {
	switch v {
	case RolloutScore:
		return "score"
	case RolloutHighestTile:
		return "highest-tile"
	}
	return fmt.Sprintf("RolloutValue(%d)", int(v))
}

func (v RolloutValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *RolloutValue) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "score":
		*v = RolloutScore
	case "highest-tile", "tile":
		*v = RolloutHighestTile
	default:
		return fmt.Errorf("%w: unknown rollout value %q", ErrInvalidConfig, text)
	}
	return nil
}

func (s Simulation) String() string {
	switch s {
	case SimulateNewChildren:
		return "new-children"
	case SimulateSelected:
		return "selected"
	}
	return fmt.Sprintf("Simulation(%d)", int(s))
}

func (s Simulation) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Simulation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "new-children", "children":
		*s = SimulateNewChildren
	case "selected", "flat":
		*s = SimulateSelected
	default:
		return fmt.Errorf("%w: unknown simulation mode %q", ErrInvalidConfig, text)
	}
	return nil
}

func (p BestChildPolicy) String() string {
	switch p {
	case BestChildAverage:
		return "average"
	case BestChildMostVisits:
		return "visits"
	}
	return fmt.Sprintf("BestChildPolicy(%d)", int(p))
}

func (p BestChildPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *BestChildPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "average", "avg":
		*p = BestChildAverage
	case "visits", "most-visits":
		*p = BestChildMostVisits
	default:
		return fmt.Errorf("%w: unknown best child policy %q", ErrInvalidConfig, text)
	}
	return nil
}

func (s DecisionSource) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "search"
}
