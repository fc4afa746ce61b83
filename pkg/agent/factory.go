package agent

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/IlikeChooros/go-mcts-2048/pkg/mcts"
)

var ErrUnknownAgent = errors.New("unknown agent")

// Names accepted by New
var Names = []string{"mcts", "random", "corner"}

// New builds an agent by name. cfg and limits only matter for "mcts",
// a non nil rng seeds every agent's random choices.
func New(name string, cfg mcts.Config, limits *mcts.Limits, rng *rand.Rand) (Agent, error) {
	switch strings.ToLower(name) {
	case "mcts", "planner":
		p, err := NewPlanner(cfg, limits)
		if err != nil {
			return nil, err
		}
		if rng != nil {
			p.SetSeed(rng.Int63())
		}
		return p, nil
	case "random":
		return NewRandom(rng), nil
	case "corner":
		return Corner{}, nil
	}
	return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknownAgent, name, Names)
}
