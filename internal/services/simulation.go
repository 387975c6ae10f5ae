package services

import (
	"bonus-route-planner/internal/catalog"
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/metrics"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

type SimulationRequest struct {
	Network TravelTimes
	Catalog *catalog.Catalog
	Depot   domain.Location
	Router  Router

	// CarryClock starts each round at the previous route's Elapsed instead
	// of at time zero.
	CarryClock bool
}

// Simulate repeatedly asks the router for a route over the pending tasks and
// applies it: deliveries are logged in order and the fulfilled tasks are
// removed from the catalog by identity. Every round plans from time zero
// unless CarryClock is set. The loop stops when the catalog is empty or the
// router returns an empty route.
//
// The catalog passed in is consumed; hand over a Snapshot to keep the caller's copy.
func Simulate(ctx context.Context, req SimulationRequest) (*domain.SimulationResult, error) {
	if req.Network == nil || req.Catalog == nil || req.Router == nil {
		return nil, errors.New("simulate: network, catalog and router must be non-nil")
	}
	if req.Depot == "" {
		return nil, fmt.Errorf("simulate: %w", domain.ErrEmptyDepot)
	}

	res := &domain.SimulationResult{
		RunID:      uuid.NewString(),
		Strategy:   req.Router.Name(),
		Deliveries: []domain.Delivery{},
	}

	clock := 0.0
	for req.Catalog.Len() > 0 {
		route, err := req.Router.Route(ctx, RouteRequest{
			Network: req.Network,
			Depot:   req.Depot,
			Tasks:   req.Catalog.Remaining(),
			StartAt: clock,
		})
		if err != nil {
			return nil, fmt.Errorf("simulate: round %d: %w", res.Rounds+1, err)
		}
		res.Rounds++
		metrics.SimulationRounds.WithLabelValues(res.Strategy).Inc()

		if route.Empty() {
			break
		}

		for _, d := range route.Deliveries {
			res.Deliveries = append(res.Deliveries, d)
			res.TotalElapsed = d.Time
			res.TotalBonus += d.Bonus
		}

		removed := req.Catalog.Remove(route.TaskIDs()...)
		if req.CarryClock {
			clock = route.Elapsed
		}

		log.Printf(
			"run_id=%s strategy=%s round=%d delivered=%d bonus=%g clock=%g pending=%d",
			res.RunID, res.Strategy, res.Rounds, removed, route.Bonus, clock, req.Catalog.Len(),
		)
	}

	res.DeliveryCount = len(res.Deliveries)
	return res, nil
}
