package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ReadinessTimeout bounds each dependency check
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is anything readiness can probe: the database pool, the Redis locker
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names a dependency probed by /readyz
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready only when every dependency answers a ping
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (storage and lock backend reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, c := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
			err := c.Pinger.Ping(ctx)
			cancel()
			if err != nil {
				slog.Error(LogMsgReadinessFailed, "dependency", c.Name, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  HealthStatusUnavailable,
					Message: fmt.Sprintf(MsgDependencyFailedFmt, c.Name),
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
