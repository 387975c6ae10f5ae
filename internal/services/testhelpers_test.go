package services

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/network"
	"testing"
)

func mustNetwork(t *testing.T, edges ...domain.Edge) *network.Network {
	t.Helper()
	n, err := network.New(edges)
	if err != nil {
		t.Fatalf("network.New: %v", err)
	}
	return n
}

func edge(a, b string, w float64) domain.Edge {
	return domain.Edge{From: domain.Location(a), To: domain.Location(b), TravelTime: w}
}

// triangleNetwork is A-B=5, B-C=3, A-C=10.
func triangleNetwork(t *testing.T) *network.Network {
	return mustNetwork(t, edge("A", "B", 5), edge("B", "C", 3), edge("A", "C", 10))
}

func triangleTasks() []domain.DeliveryTask {
	return []domain.DeliveryTask{
		{ID: 1, Deadline: 20, Destination: "B", Bonus: 5},
		{ID: 2, Deadline: 40, Destination: "C", Bonus: 8},
	}
}

func assertDeliveries(t *testing.T, got, want []domain.Delivery) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("deliveries = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery #%d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
