package services

import (
	"bonus-route-planner/internal/domain"
	"context"
	"slices"
	"strconv"
	"strings"
)

const (
	// DefaultMaxExpansions bounds the number of states a router pops per call.
	DefaultMaxExpansions = 200_000

	// ctxCheckEvery controls how often the search loop polls ctx.Err.
	ctxCheckEvery = 1024
)

// TravelTimes is the read-only view of the network a router needs.
type TravelTimes interface {
	ShortestPathTime(a, b domain.Location) (float64, bool)
	DirectEdgeTime(a, b domain.Location) (float64, bool)
}

// RouteRequest carries one router invocation's inputs. Tasks is owned by the
// caller and must not be mutated while the search runs.
type RouteRequest struct {
	Network TravelTimes
	Depot   domain.Location
	Tasks   []domain.DeliveryTask
	StartAt float64
}

// Router computes the best-bonus route it can find for the pending tasks.
type Router interface {
	Name() string
	Route(ctx context.Context, req RouteRequest) (domain.RouteResult, error)
}

// RouterOptions tunes search bounds shared by all strategies.
type RouterOptions struct {
	MaxExpansions int
}

func (o RouterOptions) maxExpansions() int {
	if o.MaxExpansions <= 0 {
		return DefaultMaxExpansions
	}
	return o.MaxExpansions
}

func hasDestination(path []domain.Delivery, dest domain.Location) bool {
	for _, d := range path {
		if d.Destination == dest {
			return true
		}
	}
	return false
}

// deliveredKey renders a location plus the set of delivered task IDs so that
// states reaching the same place with the same work done share a key.
func deliveredKey(loc domain.Location, path []domain.Delivery) string {
	ids := make([]int, 0, len(path))
	for _, d := range path {
		ids = append(ids, d.TaskID)
	}
	slices.Sort(ids)

	var b strings.Builder
	b.WriteString(string(loc))
	b.WriteByte('|')
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func appendDelivery(path []domain.Delivery, d domain.Delivery) []domain.Delivery {
	next := make([]domain.Delivery, len(path), len(path)+1)
	copy(next, path)
	return append(next, d)
}

func newRouteResult(bonus float64, path []domain.Delivery, elapsed float64) domain.RouteResult {
	if path == nil {
		path = []domain.Delivery{}
	}
	return domain.RouteResult{Bonus: bonus, Deliveries: path, Elapsed: elapsed}
}
