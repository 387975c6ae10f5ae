package services

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/metrics"
	"bonus-route-planner/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"time"
)

const StrategyExhaustive = "basic"

type exhaustiveState struct {
	elapsed  float64
	bonus    float64
	location domain.Location
	path     []domain.Delivery
}

// ExhaustiveRouter searches every feasible delivery ordering using
// shortest-path travel times over the whole network.
//
// Every leg starts and ends at the depot. A task is accepted when the agent
// can arrive by its deadline (the return trip is charged to the clock but not
// tested against the deadline) and a path back to the depot exists.
// States are popped by earliest elapsed time, ties going to the higher bonus.
type ExhaustiveRouter struct {
	Options RouterOptions
}

func NewExhaustiveRouter(opts RouterOptions) *ExhaustiveRouter {
	return &ExhaustiveRouter{Options: opts}
}

func (r *ExhaustiveRouter) Name() string { return StrategyExhaustive }

func (r *ExhaustiveRouter) Route(ctx context.Context, req RouteRequest) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "router.exhaustive", fmt.Sprintf("tasks=%d", len(req.Tasks)))(&err)

	if req.Network == nil {
		return domain.RouteResult{}, errors.New("exhaustive route: network must be non-nil")
	}
	if req.Depot == "" {
		return domain.RouteResult{}, fmt.Errorf("exhaustive route: %w", domain.ErrEmptyDepot)
	}

	start := time.Now()
	outcome := "ok"
	expanded := 0
	defer func() {
		if err != nil {
			outcome = "error"
		}
		metrics.RouterExpansions.WithLabelValues(StrategyExhaustive).Add(float64(expanded))
		metrics.RouterDuration.WithLabelValues(StrategyExhaustive, outcome).Observe(time.Since(start).Seconds())
	}()

	// Leg times depend only on the depot and the destination.
	type leg struct{ out, back float64 }
	legs := make(map[domain.Location]leg, len(req.Tasks))
	for _, t := range req.Tasks {
		if _, ok := legs[t.Destination]; ok {
			continue
		}
		out, ok := req.Network.ShortestPathTime(req.Depot, t.Destination)
		if !ok {
			continue
		}
		back, ok := req.Network.ShortestPathTime(t.Destination, req.Depot)
		if !ok {
			continue
		}
		legs[t.Destination] = leg{out: out, back: back}
	}

	pq := newSearchQueue(func(a, b exhaustiveState) bool {
		if a.elapsed != b.elapsed {
			return a.elapsed < b.elapsed
		}
		return a.bonus > b.bonus
	})

	root := exhaustiveState{elapsed: req.StartAt, location: req.Depot}
	seen := map[string]float64{deliveredKey(root.location, nil): root.elapsed}
	pq.push(root)

	best := root
	limit := r.Options.maxExpansions()

	for pq.Len() > 0 {
		if expanded%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return domain.RouteResult{}, fmt.Errorf("exhaustive route: %w", err)
			}
		}
		if expanded >= limit {
			return domain.RouteResult{}, fmt.Errorf("exhaustive route: %d states: %w", expanded, domain.ErrSearchBudgetExceeded)
		}

		s := pq.pop()
		expanded++

		if s.bonus > best.bonus {
			best = s
		}

		for _, t := range req.Tasks {
			if hasDestination(s.path, t.Destination) {
				continue
			}
			l, ok := legs[t.Destination]
			if !ok {
				continue
			}

			arrival := s.elapsed + l.out
			if arrival > t.Deadline {
				continue
			}

			next := exhaustiveState{
				elapsed:  arrival + l.back,
				bonus:    s.bonus + t.Bonus,
				location: t.Destination,
				path: appendDelivery(s.path, domain.Delivery{
					TaskID:      t.ID,
					Time:        arrival,
					Destination: t.Destination,
					Bonus:       t.Bonus,
				}),
			}

			key := deliveredKey(next.location, next.path)
			if prev, ok := seen[key]; ok && prev <= next.elapsed {
				continue
			}
			seen[key] = next.elapsed
			pq.push(next)
		}
	}

	return newRouteResult(best.bonus, best.path, best.elapsed), nil
}
