package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 2 * time.Second

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is alive.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"status": "ok"})
}

// ReadinessHandler checks the service's backing dependencies.
type ReadinessHandler struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{db: db, rdb: rdb}
}

// Readiness reports whether Mongo and Redis are reachable.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /api/health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	checks := echo.Map{}
	healthy := true

	if h.db != nil {
		err := h.probe(c, func(ctx context.Context) error {
			return h.db.Client().Ping(ctx, nil)
		})
		checks["mongo"] = statusOf(err)
		healthy = healthy && err == nil
	}
	if h.rdb != nil {
		err := h.probe(c, func(ctx context.Context) error {
			return h.rdb.Ping(ctx).Err()
		})
		checks["redis"] = statusOf(err)
		healthy = healthy && err == nil
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"success": false, "checks": checks})
	}
	return respond(c, http.StatusOK, echo.Map{"checks": checks})
}

func (h *ReadinessHandler) probe(c echo.Context, ping func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()
	return ping(ctx)
}

func statusOf(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}
