package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// GetStats returns record counts per collection.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.TablesService.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Stats not found", "Server error in fetching stats")
		return
	}

	writeSuccess(w, stats, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		writeSuccess(w, HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.HealthCheck(r.Context()); err != nil {
		writeSuccess(w, HealthResponse{Status: "unavailable", Error: err.Error()}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
