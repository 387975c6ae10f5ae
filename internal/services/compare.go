package services

import (
	"bonus-route-planner/internal/catalog"
	"bonus-route-planner/internal/domain"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ChartPoint is one point of the strategy comparison chart:
// total execution time on the x-axis, total bonus on the y-axis.
type ChartPoint struct {
	Label   string
	Elapsed float64
	Bonus   float64
}

type Comparison struct {
	Basic     *domain.SimulationResult
	Optimized *domain.SimulationResult
	Points    []ChartPoint
}

var chartLabels = map[string]string{
	StrategyExhaustive: "basic simulation",
	StrategyHeuristic:  "optimized simulation",
}

// CompareStrategies runs the exhaustive and heuristic simulations side by side.
// Each run gets its own snapshot of cat, which is left untouched.
func CompareStrategies(
	ctx context.Context,
	net TravelTimes,
	cat *catalog.Catalog,
	depot domain.Location,
	opts RouterOptions,
) (*Comparison, error) {
	if cat == nil {
		return nil, errors.New("compare strategies: catalog must be non-nil")
	}

	routers := []Router{NewExhaustiveRouter(opts), NewHeuristicRouter(opts)}
	results := make([]*domain.SimulationResult, len(routers))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range routers {
		snap := cat.Snapshot()
		g.Go(func() error {
			res, err := Simulate(gctx, SimulationRequest{
				Network: net,
				Catalog: snap,
				Depot:   depot,
				Router:  r,
			})
			if err != nil {
				return fmt.Errorf("compare strategies: %s: %w", r.Name(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp := &Comparison{Basic: results[0], Optimized: results[1]}
	for _, res := range results {
		cmp.Points = append(cmp.Points, ChartPoint{
			Label:   chartLabels[res.Strategy],
			Elapsed: res.TotalElapsed,
			Bonus:   res.TotalBonus,
		})
	}
	return cmp, nil
}
