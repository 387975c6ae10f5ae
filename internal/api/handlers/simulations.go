package handlers

import (
	"bonus-route-planner/internal/api/dto"
	"bonus-route-planner/internal/catalog"
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/platform/obs"
	"bonus-route-planner/internal/ports"
	"bonus-route-planner/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
)

// Upper bound accepted for max_expansions in a request.
const maxRequestExpansions = 5_000_000

type SimulationHandler struct {
	Edges ports.NetworkRepository
	Tasks ports.TaskRepository
	// Cache is optional.
	Cache ports.DistanceCache

	DefaultDepot         string
	DefaultStrategy      string
	DefaultMaxExpansions int
}

// Run loads the network and the pending tasks, then runs one strategy, or
// both side by side when no strategy is given.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	depot := strings.TrimSpace(req.Depot)
	if depot == "" {
		depot = strings.TrimSpace(h.DefaultDepot)
	}
	if depot == "" {
		writeError(w, r, http.StatusBadRequest, "depot is required")
		return
	}

	strategy := strings.TrimSpace(req.Strategy)
	if strategy == "" {
		strategy = strings.TrimSpace(h.DefaultStrategy)
	}

	maxExp := req.MaxExpansions
	if maxExp == 0 {
		maxExp = h.DefaultMaxExpansions
	}
	if maxExp < 0 || maxExp > maxRequestExpansions {
		writeError(w, r, http.StatusBadRequest, "max_expansions must be between 0 and 5000000")
		return
	}
	opts := services.RouterOptions{MaxExpansions: maxExp}

	var router services.Router
	if strategy != "" {
		var err error
		router, err = services.NewRouter(strategy, opts)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "unknown strategy")
			return
		}
	}

	ctx := r.Context()

	net, err := services.LoadNetwork(ctx, h.Edges, h.Cache)
	if err != nil {
		h.fail(w, r, "load network", err)
		return
	}
	if !net.HasLocation(domain.Location(depot)) {
		writeError(w, r, http.StatusBadRequest, "depot is not a location of the network")
		return
	}

	tasks, err := h.Tasks.ListTasks(ctx)
	if err != nil {
		h.fail(w, r, "list tasks", err)
		return
	}
	cat, err := catalog.New(tasks)
	if err != nil {
		h.fail(w, r, "build catalog", err)
		return
	}

	if router == nil {
		cmp, err := services.CompareStrategies(ctx, net, cat, domain.Location(depot), opts)
		if err != nil {
			h.fail(w, r, "compare strategies", err)
			return
		}
		res := dto.ComparisonResponse{
			Basic:     toSimulationResponse(cmp.Basic),
			Optimized: toSimulationResponse(cmp.Optimized),
			Points:    make([]dto.ChartPointResponse, 0, len(cmp.Points)),
		}
		for _, p := range cmp.Points {
			res.Points = append(res.Points, dto.ChartPointResponse{Label: p.Label, Elapsed: p.Elapsed, Bonus: p.Bonus})
		}
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	sim, err := services.Simulate(ctx, services.SimulationRequest{
		Network: net,
		Catalog: cat,
		Depot:   domain.Location(depot),
		Router:  router,
	})
	if err != nil {
		h.fail(w, r, "simulate", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toSimulationResponse(sim))
}

func (h *SimulationHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrSearchBudgetExceeded):
		writeError(w, r, http.StatusUnprocessableEntity, "search budget exceeded; raise max_expansions")
	case errors.Is(err, domain.ErrInvalidEdgeWeight), errors.Is(err, domain.ErrInvalidTask):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toSimulationResponse(s *domain.SimulationResult) dto.SimulationResponse {
	res := dto.SimulationResponse{
		RunID:         s.RunID,
		Strategy:      s.Strategy,
		Deliveries:    make([]dto.DeliveryResponse, 0, len(s.Deliveries)),
		DeliveryCount: s.DeliveryCount,
		TotalElapsed:  s.TotalElapsed,
		TotalBonus:    s.TotalBonus,
		Rounds:        s.Rounds,
	}
	for _, d := range s.Deliveries {
		res.Deliveries = append(res.Deliveries, dto.DeliveryResponse{
			TaskID:      d.TaskID,
			Time:        d.Time,
			Destination: string(d.Destination),
			Bonus:       d.Bonus,
		})
	}
	return res
}
