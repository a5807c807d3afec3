package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Dependency is something /health pings, e.g. the database or Redis.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct {
	deps    []Dependency
	timeout time.Duration
}

func NewHandler(deps ...Dependency) *Handler {
	return &Handler{deps: deps, timeout: 2 * time.Second}
}

// Health reports "ok" when every dependency answers, otherwise 503 with
// "degraded" and the failing dependency marked "down".
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	checks := make(map[string]string, len(h.deps))
	for _, d := range h.deps {
		if err := d.Ping(ctx); err != nil {
			checks[d.Name] = "down"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		checks[d.Name] = "up"
	}

	return c.JSON(code, map[string]any{
		"status": status,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
