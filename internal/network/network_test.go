package network

import (
	"bonus-route-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *Network {
	t.Helper()
	n, err := New([]domain.Edge{
		{From: "A", To: "B", TravelTime: 5},
		{From: "B", To: "C", TravelTime: 3},
		{From: "A", To: "C", TravelTime: 10},
	})
	require.NoError(t, err)
	return n
}

func TestNetworkShortestPathTime(t *testing.T) {
	n := triangle(t)

	tests := []struct {
		from, to domain.Location
		want     float64
	}{
		{"A", "A", 0},
		{"A", "B", 5},
		{"B", "A", 5},
		{"A", "C", 8},
		{"C", "A", 8},
		{"B", "C", 3},
	}
	for _, tt := range tests {
		got, ok := n.ShortestPathTime(tt.from, tt.to)
		require.True(t, ok, "%s->%s should be reachable", tt.from, tt.to)
		require.Equal(t, tt.want, got, "%s->%s", tt.from, tt.to)
	}
}

func TestNetworkDirectEdgeTime(t *testing.T) {
	n := triangle(t)

	w, ok := n.DirectEdgeTime("C", "A")
	require.True(t, ok)
	require.Equal(t, 10.0, w)

	_, ok = n.DirectEdgeTime("A", "A")
	require.False(t, ok)
}

func TestNetworkDuplicateEdgeLastWriteWins(t *testing.T) {
	tests := []struct {
		name  string
		edges []domain.Edge
	}{
		{"same orientation", []domain.Edge{
			{From: "A", To: "B", TravelTime: 5},
			{From: "A", To: "B", TravelTime: 9},
		}},
		{"reversed orientation", []domain.Edge{
			{From: "A", To: "B", TravelTime: 5},
			{From: "B", To: "A", TravelTime: 9},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.edges)
			require.NoError(t, err)

			got, ok := n.ShortestPathTime("A", "B")
			require.True(t, ok)
			require.Equal(t, 9.0, got)

			for _, pair := range [][2]domain.Location{{"A", "B"}, {"B", "A"}} {
				w, ok := n.DirectEdgeTime(pair[0], pair[1])
				require.True(t, ok)
				require.Equal(t, 9.0, w)
			}
		})
	}
}

func TestNetworkUnreachable(t *testing.T) {
	n, err := New([]domain.Edge{
		{From: "A", To: "B", TravelTime: 1},
		{From: "X", To: "Y", TravelTime: 1},
	})
	require.NoError(t, err)

	_, ok := n.ShortestPathTime("A", "Y")
	require.False(t, ok)

	_, ok = n.ShortestPathTime("A", "Z")
	require.False(t, ok, "unknown location must be unreachable")

	_, ok = n.DirectEdgeTime("Z", "A")
	require.False(t, ok)
}

func TestNetworkRejectsNonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -3} {
		_, err := New([]domain.Edge{{From: "A", To: "B", TravelTime: w}})
		require.ErrorIs(t, err, domain.ErrInvalidEdgeWeight)
	}
}

func TestNetworkSeededRows(t *testing.T) {
	base := triangle(t)
	require.Len(t, base.ComputedOrigins(), 3)

	rows := map[domain.Location]map[domain.Location]float64{
		"A": base.Row("A"),
		"B": base.Row("B"),
	}
	n, err := New([]domain.Edge{
		{From: "A", To: "B", TravelTime: 5},
		{From: "B", To: "C", TravelTime: 3},
		{From: "A", To: "C", TravelTime: 10},
	}, WithDistanceRows(rows))
	require.NoError(t, err)

	require.Equal(t, []domain.Location{"C"}, n.ComputedOrigins())
	require.Equal(t, base.Fingerprint(), n.Fingerprint())

	got, _ := n.ShortestPathTime("A", "C")
	require.Equal(t, 8.0, got)
}

func TestNetworkFingerprintIgnoresEdgeOrder(t *testing.T) {
	a, err := New([]domain.Edge{{From: "A", To: "B", TravelTime: 1}, {From: "B", To: "C", TravelTime: 2}})
	require.NoError(t, err)
	b, err := New([]domain.Edge{{From: "C", To: "B", TravelTime: 2}, {From: "B", To: "A", TravelTime: 1}})
	require.NoError(t, err)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, err := New([]domain.Edge{{From: "A", To: "B", TravelTime: 1}, {From: "B", To: "C", TravelTime: 4}})
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestFingerprintOfMatchesNetwork(t *testing.T) {
	edges := []domain.Edge{{From: "A", To: "B", TravelTime: 2}, {From: "A", To: "B", TravelTime: 7}}
	n, err := New(edges)
	require.NoError(t, err)

	fp, err := FingerprintOf(edges)
	require.NoError(t, err)
	require.Equal(t, n.Fingerprint(), fp)

	_, err = FingerprintOf([]domain.Edge{{From: "A", To: "B", TravelTime: 0}})
	require.ErrorIs(t, err, domain.ErrInvalidEdgeWeight)
}
