package services

import (
	"bonus-route-planner/internal/domain"
	"fmt"
	"strings"
)

// Strategies lists the router names accepted by NewRouter.
var Strategies = []string{StrategyExhaustive, StrategyHeuristic}

// NewRouter returns the router registered under strategy.
func NewRouter(strategy string, opts RouterOptions) (Router, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyExhaustive, "exhaustive":
		return NewExhaustiveRouter(opts), nil
	case StrategyHeuristic, "heuristic":
		return NewHeuristicRouter(opts), nil
	default:
		return nil, fmt.Errorf("new router: %q: %w", strategy, domain.ErrUnknownStrategy)
	}
}
