package mcts

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Planner tuning, loadable from a JSON file
type Config struct {
	ExplorationParam float64         `json:"exploration"`
	RolloutValue     RolloutValue    `json:"rollout_value"`
	Simulation       Simulation      `json:"simulation"`
	HeuristicWeight  float64         `json:"heuristic_weight"`
	EmptyWeight      float64         `json:"empty_weight"`
	Policy           BestChildPolicy `json:"best_child"`
}

func DefaultConfig() Config {
	return Config{
		ExplorationParam: ExplorationParam,
		RolloutValue:     RolloutScore,
		Simulation:       SimulateNewChildren,
		HeuristicWeight:  0,
		EmptyWeight:      DefaultEmptyWeight,
		Policy:           BestChildAverage,
	}
}

func (c Config) Validate() error {
	if c.ExplorationParam < 0 || math.IsNaN(c.ExplorationParam) || math.IsInf(c.ExplorationParam, 0) {
		return fmt.Errorf("%w: exploration %v", ErrInvalidConfig, c.ExplorationParam)
	}
	if c.RolloutValue != RolloutScore && c.RolloutValue != RolloutHighestTile {
		return fmt.Errorf("%w: rollout value %v", ErrInvalidConfig, c.RolloutValue)
	}
	if c.Simulation != SimulateNewChildren && c.Simulation != SimulateSelected {
		return fmt.Errorf("%w: simulation %v", ErrInvalidConfig, c.Simulation)
	}
	if c.Policy != BestChildAverage && c.Policy != BestChildMostVisits {
		return fmt.Errorf("%w: best child policy %v", ErrInvalidConfig, c.Policy)
	}
	if math.IsNaN(c.HeuristicWeight) || math.IsNaN(c.EmptyWeight) || c.EmptyWeight < 0 {
		return fmt.Errorf("%w: heuristic weights %v, %v", ErrInvalidConfig, c.HeuristicWeight, c.EmptyWeight)
	}
	return nil
}

func (c Config) String() string {
	data, _ := json.Marshal(c)
	return string(data)
}

// LoadConfig reads a JSON config, fields missing from the file keep their defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load planner config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load planner config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load planner config %s: %w", path, err)
	}
	return cfg, nil
}
