package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	IsHealthy() bool
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	db HealthChecker
}

// NewHealthHandler creates a HealthHandler. db may be nil when the process
// runs without a database.
func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Get reports 200 when the database is up and 503 otherwise.
func (h *HealthHandler) Get(c echo.Context) error {
	if h.db == nil {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "disabled"})
	}
	if !h.db.IsHealthy() {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "down"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
