package api

import (
	"net/http"

	"github.com/orbinite/gids/internal/configstore"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store configstore.Store
}

// NewHealthHandler creates a new health handler.
// The store is probed for readiness checks.
func NewHealthHandler(store configstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// RegisterRoutes registers health routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.liveness)
	mux.HandleFunc("GET /ready", h.readiness)
}

// liveness returns 200 OK if the process is alive.
func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readiness returns 200 OK if the config store is reachable.
// A read of a known key exercises the actual storage path.
func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	if _, _, err := h.store.Get(r.Context(), configstore.KeyKnowledgeBase); err != nil {
		http.Error(w, "config store not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
