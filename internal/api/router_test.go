package api

import (
	"bonus-route-planner/internal/api/dto"
	"bonus-route-planner/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	edges []domain.Edge
	tasks []domain.DeliveryTask
	err   error
}

func (m *memoryRepo) ListEdges(context.Context) ([]domain.Edge, error) { return m.edges, m.err }

func (m *memoryRepo) ListTasks(context.Context) ([]domain.DeliveryTask, error) { return m.tasks, m.err }

func triangleRepo() *memoryRepo {
	return &memoryRepo{
		edges: []domain.Edge{
			{From: "A", To: "B", TravelTime: 5},
			{From: "B", To: "C", TravelTime: 3},
			{From: "A", To: "C", TravelTime: 10},
		},
		tasks: []domain.DeliveryTask{
			{ID: 1, Deadline: 20, Destination: "B", Bonus: 5},
			{ID: 2, Deadline: 40, Destination: "C", Bonus: 8},
		},
	}
}

func newTestServer(t *testing.T, repo *memoryRepo) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(Deps{Edges: repo, Tasks: repo, DefaultDepot: "A"}))
	t.Cleanup(srv.Close)
	return srv
}

func postSimulation(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	res, err := http.Post(srv.URL+"/simulations", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func TestHealthAndRequestID(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get(requestIDHeader))

	var health struct {
		Status     string   `json:"status"`
		Strategies []string `json:"strategies"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, []string{"basic", "optimized"}, health.Strategies)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	res2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res2.Body.Close()
	require.Equal(t, "abc-123", res2.Header.Get(requestIDHeader))
}

func TestListTasks(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	res, err := http.Get(srv.URL + "/tasks")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ListTasksResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body.Tasks, 2)
	require.Equal(t, 13.0, body.TotalBonus)
}

func TestListTasksRepositoryFailure(t *testing.T) {
	srv := newTestServer(t, &memoryRepo{err: errors.New("db down")})

	res, err := http.Get(srv.URL + "/tasks")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestSimulationSingleStrategy(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	res := postSimulation(t, srv, `{"strategy":"optimized"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.SimulationResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "optimized", body.Strategy)
	require.Equal(t, 13.0, body.TotalBonus)
	require.Equal(t, 13.0, body.TotalElapsed)
	require.Equal(t, 2, body.DeliveryCount)
	require.NotEmpty(t, body.RunID)
}

func TestSimulationComparison(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	res := postSimulation(t, srv, `{"depot":"A"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ComparisonResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, []dto.ChartPointResponse{
		{Label: "basic simulation", Elapsed: 18, Bonus: 13},
		{Label: "optimized simulation", Elapsed: 13, Bonus: 13},
	}, body.Points)
}

func TestSimulationErrors(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"unknown field", `{"hub":"A"}`, http.StatusBadRequest},
		{"unknown strategy", `{"strategy":"teleport"}`, http.StatusBadRequest},
		{"unknown depot", `{"depot":"Z"}`, http.StatusBadRequest},
		{"negative budget", `{"max_expansions":-1}`, http.StatusBadRequest},
		{"budget exhausted", `{"strategy":"basic","max_expansions":1}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := postSimulation(t, srv, tt.body)
			require.Equal(t, tt.want, res.StatusCode)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	res, err := http.Get(srv.URL + "/simulations")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	require.Equal(t, http.MethodPost, res.Header.Get("Allow"))

	var body struct {
		Error     string `json:"error"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "method not allowed", body.Error)
	require.Equal(t, res.Header.Get(requestIDHeader), body.RequestID)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, triangleRepo())

	_ = postSimulation(t, srv, `{"strategy":"basic"}`)

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(b), "router_expansions_total")
	require.Contains(t, string(b), "http_requests_total")
}

func TestListTasksRejectsInvalidStoredTasks(t *testing.T) {
	repo := triangleRepo()
	repo.tasks = append(repo.tasks, domain.DeliveryTask{ID: 3, Deadline: math.Inf(1), Destination: "C", Bonus: 1})
	srv := newTestServer(t, repo)

	res, err := http.Get(srv.URL + "/tasks")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	sim := postSimulation(t, srv, `{"strategy":"optimized"}`)
	require.Equal(t, http.StatusBadRequest, sim.StatusCode)
}
