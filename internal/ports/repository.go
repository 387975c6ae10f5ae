package ports

import (
	"bonus-route-planner/internal/domain"
	"context"
)

// Port: a boundary for retrieving the edges of the delivery network.
type NetworkRepository interface {
	ListEdges(ctx context.Context) ([]domain.Edge, error)
}

// Port: a boundary for retrieving the delivery tasks to plan.
type TaskRepository interface {
	// Tasks are returned in non-decreasing deadline order.
	ListTasks(ctx context.Context) ([]domain.DeliveryTask, error)
}
