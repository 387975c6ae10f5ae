package api

import (
	"bonus-route-planner/internal/api/handlers"
	"bonus-route-planner/internal/metrics"
	"bonus-route-planner/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies of the HTTP surface. Cache may be nil.
type Deps struct {
	Edges ports.NetworkRepository
	Tasks ports.TaskRepository
	Cache ports.DistanceCache

	DefaultDepot         string
	DefaultStrategy      string
	DefaultMaxExpansions int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	taskHandler := &handlers.TaskHandler{Repo: d.Tasks}
	simHandler := &handlers.SimulationHandler{
		Edges:                d.Edges,
		Tasks:                d.Tasks,
		Cache:                d.Cache,
		DefaultDepot:         d.DefaultDepot,
		DefaultStrategy:      d.DefaultStrategy,
		DefaultMaxExpansions: d.DefaultMaxExpansions,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/tasks", taskHandler.List)
	mux.HandleFunc("/simulations", simHandler.Run)

	return requestIDMiddleware(loggingMiddleware(mux))
}
