package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-car-rental/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// default: healthy
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler reporting whether the database answers.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
	}
}

// NewRootHandler returns the API banner.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Car Rental API"})
	}
}
