package api

import (
	"net/http"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store  *tourism.Store
	logger log.Logger
}

// NewHealthHandler creates a new health handler.
// store is the dataset used for readiness checks.
func NewHealthHandler(store *tourism.Store, logger log.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// RegisterRoutes registers health routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.liveness)
	mux.HandleFunc("GET /ready", h.readiness)
}

// HealthResponse is the payload for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// liveness is a liveness probe endpoint.
// Returns 200 OK if the process is alive.
func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	records := 0
	if h.store != nil {
		records = h.store.Len()
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Records: records}, h.logger)
}

// readiness is a readiness probe endpoint.
// Returns 200 OK only when the dataset is loaded and non-empty.
func (h *HealthHandler) readiness(w http.ResponseWriter, _ *http.Request) {
	if h.store == nil || h.store.Len() == 0 {
		h.logger.Warn("readiness check failed: dataset not loaded")
		writeError(w, http.StatusServiceUnavailable, "not_ready", "dataset not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready", Records: h.store.Len()}, h.logger)
}
