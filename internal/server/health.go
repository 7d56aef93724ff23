package server

import (
	"context"
	"net/http"
	"time"

	"github.com/desertthunder/recipebox/internal/models"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Recipes   *int      `json:"recipes,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	store models.RecipeStore
	ready func() bool
}

// NewHealthHandler creates a HealthHandler. ready reports whether the server is accepting traffic.
func NewHealthHandler(store models.RecipeStore, ready func() bool) *HealthHandler {
	return &HealthHandler{store: store, ready: ready}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/ready", Handler: h.Ready},
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
}

// Ready handles GET /ready. The store must answer a count query within two seconds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.ready() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now().UTC(),
			Reason:    "server is not accepting traffic",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	count, err := h.store.Count(ctx)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now().UTC(),
			Reason:    "store unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready", Timestamp: time.Now().UTC(), Recipes: &count})
}
