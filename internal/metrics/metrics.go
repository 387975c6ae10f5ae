// Package metrics holds the Prometheus collectors exported by the planner.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	// RouterExpansions counts search states popped per strategy.
	RouterExpansions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "router_expansions_total", Help: "Search states expanded by routers."},
		[]string{"strategy"},
	)
	// RouterDuration records router invocation time in seconds.
	RouterDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "router_duration_seconds", Help: "Router invocation duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"strategy", "outcome"},
	)
	// SimulationRounds counts router rounds executed by the simulation loop.
	SimulationRounds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "simulation_rounds_total", Help: "Simulation rounds by strategy."},
		[]string{"strategy"},
	)
	// DistanceCacheLookups counts distance cache hits and misses per origin row.
	DistanceCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "distance_cache_lookups_total", Help: "Distance cache row lookups by result."},
		[]string{"result"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(
			RouterExpansions,
			RouterDuration,
			SimulationRounds,
			DistanceCacheLookups,
			HTTPRequests,
			HTTPDuration,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
}
