package ports

import (
	"bonus-route-planner/internal/domain"
	"context"
)

// Shortest-path times from one origin to every location it can reach.
type DistanceRow map[domain.Location]float64

// Contract for storing shortest-path rows computed for a network.
// Rows are keyed by the network fingerprint so a changed edge set never
// reads rows computed for another one.
type DistanceCache interface {
	// Return the cached rows for the requested origins. Missing origins are
	// simply absent from the result.
	GetRows(ctx context.Context, fingerprint string, origins []domain.Location) (map[domain.Location]DistanceRow, error)
	// Store rows for the given fingerprint, replacing existing ones.
	PutRows(ctx context.Context, fingerprint string, rows map[domain.Location]DistanceRow) error
}
