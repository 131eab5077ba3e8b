package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	v1 "github.com/rigelshaw/ScriptGuard/internal/api/v1"
	"github.com/rigelshaw/ScriptGuard/internal/api/v1/middleware"
	"github.com/rigelshaw/ScriptGuard/internal/config"
	"github.com/rigelshaw/ScriptGuard/internal/metrics"
)

// SetupRoutes wires the two mock endpoints ahead of the static fallback;
// first match wins.
func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, logger *zap.Logger, cfg *config.Config) {
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.CORS())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	app.Get("/fake/track", handler.Track)
	app.Get("/fake/miner_payload", handler.MinerPayload)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	app.Static("/", cfg.Static.Dir)
}
