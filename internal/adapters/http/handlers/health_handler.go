package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 503 if any check fails.
// Degraded checks are reported but keep the service ready, so a half-open
// storage breaker still receives the traffic it needs to close again.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	failing, degraded := false, false
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = statusOK
		case errors.Is(err, ports.ErrDegraded):
			checks[name] = err.Error()
			degraded = true
		default:
			checks[name] = err.Error()
			failing = true
		}
	}

	status := statusReady
	code := http.StatusOK
	switch {
	case failing:
		status = statusNotReady
		code = http.StatusServiceUnavailable
	case degraded:
		status = statusDegraded
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
