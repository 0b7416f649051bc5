package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

// HealthHandler reports service and database status.
type HealthHandler struct {
	pingDB Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pingDB Pinger) *HealthHandler {
	return &HealthHandler{pingDB: pingDB}
}

// RegisterRoutes registers GET /health.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth returns 200 when the database answers and 503 otherwise.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, database, code := "healthy", "connected", fiber.StatusOK
	if err := h.pingDB(ctx); err != nil {
		status, database, code = "unhealthy", "unreachable", fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"time":     time.Now().Format(time.RFC3339),
		"database": database,
	})
}
