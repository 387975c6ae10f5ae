package services

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/metrics"
	"bonus-route-planner/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"
)

const StrategyHeuristic = "optimized"

type heuristicState struct {
	cost     float64
	bonus    float64
	location domain.Location
	now      float64
	path     []domain.Delivery
}

// HeuristicRouter is a best-first search restricted to direct edges.
//
// The agent moves from destination to destination, but a task is accepted
// only if the agent could still get from it straight back to the depot by the
// deadline. States are ordered by the negated sum of collected bonus and all
// bonus still on the table, which biases the search toward routes with the
// most upside. The result is a greedy approximation, not an optimum.
//
// Besides moving, a state may wait until any pending deadline; wait states
// keep the location, path and bonus and only advance the clock.
type HeuristicRouter struct {
	Options RouterOptions
}

func NewHeuristicRouter(opts RouterOptions) *HeuristicRouter {
	return &HeuristicRouter{Options: opts}
}

func (r *HeuristicRouter) Name() string { return StrategyHeuristic }

func (r *HeuristicRouter) Route(ctx context.Context, req RouteRequest) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "router.heuristic", fmt.Sprintf("tasks=%d", len(req.Tasks)))(&err)

	if req.Network == nil {
		return domain.RouteResult{}, errors.New("heuristic route: network must be non-nil")
	}
	if req.Depot == "" {
		return domain.RouteResult{}, fmt.Errorf("heuristic route: %w", domain.ErrEmptyDepot)
	}

	start := time.Now()
	outcome := "ok"
	expanded := 0
	defer func() {
		if err != nil {
			outcome = "error"
		}
		metrics.RouterExpansions.WithLabelValues(StrategyHeuristic).Add(float64(expanded))
		metrics.RouterDuration.WithLabelValues(StrategyHeuristic, outcome).Observe(time.Since(start).Seconds())
	}()

	pq := newSearchQueue(func(a, b heuristicState) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		if a.bonus != b.bonus {
			return a.bonus > b.bonus
		}
		return a.now < b.now
	})

	root := heuristicState{location: req.Depot, now: req.StartAt}
	visited := map[string]struct{}{heuristicKey(root): {}}
	pq.push(root)

	best := root
	limit := r.Options.maxExpansions()

	for pq.Len() > 0 {
		if expanded%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return domain.RouteResult{}, fmt.Errorf("heuristic route: %w", err)
			}
		}
		if expanded >= limit {
			return domain.RouteResult{}, fmt.Errorf("heuristic route: %d states: %w", expanded, domain.ErrSearchBudgetExceeded)
		}

		s := pq.pop()
		expanded++

		if s.bonus > best.bonus {
			best = s
		}

		for _, next := range heuristicSuccessors(req, s) {
			if markVisited(visited, next) {
				pq.push(next)
			}
		}
	}

	elapsed := best.now
	if n := len(best.path); n > 0 {
		if back, ok := req.Network.DirectEdgeTime(best.path[n-1].Destination, req.Depot); ok {
			elapsed += back
		}
	}

	return newRouteResult(best.bonus, best.path, elapsed), nil
}

// heuristicSuccessors expands s into its delivery moves followed by one wait
// per distinct pending deadline, in ascending deadline order.
func heuristicSuccessors(req RouteRequest, s heuristicState) []heuristicState {
	potential := remainingBonus(req.Tasks, s.path)

	var out []heuristicState
	for _, t := range req.Tasks {
		if hasDestination(s.path, t.Destination) {
			continue
		}
		travel, ok := req.Network.DirectEdgeTime(s.location, t.Destination)
		if !ok {
			continue
		}
		// No direct way back means the round trip can never meet the deadline.
		back, ok := req.Network.DirectEdgeTime(t.Destination, req.Depot)
		if !ok {
			continue
		}

		arrival := s.now + travel
		if arrival+back > t.Deadline {
			continue
		}

		out = append(out, heuristicState{
			cost:     -(s.bonus + t.Bonus + potential),
			bonus:    s.bonus + t.Bonus,
			location: t.Destination,
			now:      arrival,
			path: appendDelivery(s.path, domain.Delivery{
				TaskID:      t.ID,
				Time:        arrival,
				Destination: t.Destination,
				Bonus:       t.Bonus,
			}),
		})
	}

	// Each wait gets its own key from the waiting state, not the parent's.
	for _, deadline := range pendingDeadlines(req.Tasks, s) {
		out = append(out, heuristicState{
			cost:     -(s.bonus + potential),
			bonus:    s.bonus,
			location: s.location,
			now:      deadline,
			path:     s.path,
		})
	}
	return out
}

// remainingBonus sums the bonuses of tasks whose destination the path has
// not visited yet.
func remainingBonus(tasks []domain.DeliveryTask, path []domain.Delivery) float64 {
	total := 0.0
	for _, t := range tasks {
		if !hasDestination(path, t.Destination) {
			total += t.Bonus
		}
	}
	return total
}

// pendingDeadlines returns the distinct future deadlines of undelivered tasks
// in ascending order.
func pendingDeadlines(tasks []domain.DeliveryTask, s heuristicState) []float64 {
	var out []float64
	for _, t := range tasks {
		if t.Deadline <= s.now || hasDestination(s.path, t.Destination) {
			continue
		}
		if !slices.Contains(out, t.Deadline) {
			out = append(out, t.Deadline)
		}
	}
	slices.Sort(out)
	return out
}

func heuristicKey(s heuristicState) string {
	return deliveredKey(s.location, s.path) + "@" + strconv.FormatFloat(s.now, 'g', -1, 64)
}

// markVisited records s as visited and reports whether it was new.
func markVisited(visited map[string]struct{}, s heuristicState) bool {
	key := heuristicKey(s)
	if _, ok := visited[key]; ok {
		return false
	}
	visited[key] = struct{}{}
	return true
}
