package mcts

import "errors"

var ErrInvalidConfig = errors.New("invalid planner config")
