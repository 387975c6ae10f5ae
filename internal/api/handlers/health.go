package handlers

import (
	"bonus-route-planner/internal/services"
	"net/http"
)

type healthResponse struct {
	Status     string   `json:"status"`
	Strategies []string `json:"strategies"`
}

// Health is a liveness check that also lists the available strategies.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Strategies: services.Strategies})
}
