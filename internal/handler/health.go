package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/TornBot_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is anything that can confirm its backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz provides a readiness check that validates store connectivity
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse "Storage unreachable"
// @Router /readyz [get]
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: MsgStoreUnavailable,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// ReadinessTimeout bounds the store ping behind /readyz
const ReadinessTimeout = 2 * time.Second
