package services

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/ports"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticEdges []domain.Edge

func (s staticEdges) ListEdges(context.Context) ([]domain.Edge, error) { return s, nil }

type memoryCache struct {
	rows    map[string]map[domain.Location]ports.DistanceRow
	puts    int
	failGet bool
}

func (m *memoryCache) GetRows(_ context.Context, fp string, origins []domain.Location) (map[domain.Location]ports.DistanceRow, error) {
	if m.failGet {
		return nil, errors.New("cache down")
	}
	out := map[domain.Location]ports.DistanceRow{}
	for _, o := range origins {
		if row, ok := m.rows[fp][o]; ok {
			out[o] = row
		}
	}
	return out, nil
}

func (m *memoryCache) PutRows(_ context.Context, fp string, rows map[domain.Location]ports.DistanceRow) error {
	m.puts++
	if m.rows[fp] == nil {
		m.rows[fp] = map[domain.Location]ports.DistanceRow{}
	}
	for o, row := range rows {
		m.rows[fp][o] = row
	}
	return nil
}

func TestLoadNetworkUsesCache(t *testing.T) {
	repo := staticEdges{edge("A", "B", 5), edge("B", "C", 3), edge("A", "C", 10)}
	cache := &memoryCache{rows: map[string]map[domain.Location]ports.DistanceRow{}}

	first, err := LoadNetwork(context.Background(), repo, cache)
	require.NoError(t, err)
	require.Len(t, first.ComputedOrigins(), 3)
	require.Equal(t, 1, cache.puts)

	second, err := LoadNetwork(context.Background(), repo, cache)
	require.NoError(t, err)
	require.Empty(t, second.ComputedOrigins())
	require.Equal(t, 1, cache.puts, "nothing new to store")

	got, ok := second.ShortestPathTime("A", "C")
	require.True(t, ok)
	require.Equal(t, 8.0, got)
}

func TestLoadNetworkSurvivesCacheFailure(t *testing.T) {
	repo := staticEdges{edge("A", "B", 5)}
	cache := &memoryCache{rows: map[string]map[domain.Location]ports.DistanceRow{}, failGet: true}

	net, err := LoadNetwork(context.Background(), repo, cache)
	require.NoError(t, err)
	require.Len(t, net.ComputedOrigins(), 2)
}

func TestLoadNetworkWithoutCache(t *testing.T) {
	_, err := LoadNetwork(context.Background(), staticEdges{edge("A", "B", -1)}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidEdgeWeight)
}
