package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rigelshaw/ScriptGuard/internal/api"
	v1 "github.com/rigelshaw/ScriptGuard/internal/api/v1"
	"github.com/rigelshaw/ScriptGuard/internal/config"
	"github.com/rigelshaw/ScriptGuard/internal/logging"
	"github.com/rigelshaw/ScriptGuard/internal/metrics"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			logging.NewLogger,
			metrics.NewMetrics,
			v1.NewHandler,
			api.NewApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, logger, cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			printBanner(cfg)
			go func() {
				if err := app.Listen(":" + cfg.API.Port); err != nil {
					logger.Fatal("Server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func printBanner(cfg *config.Config) {
	fmt.Printf("Starting ScriptGuard demo server on http://localhost:%s\n", cfg.API.Port)
	fmt.Printf("Serving files from: %s\n", cfg.Static.Dir)
	fmt.Println("Available endpoints:")
	fmt.Println("  GET /fake/track          - Returns JSON confirmation")
	fmt.Println("  GET /fake/miner_payload  - Returns miner payload")
	fmt.Println("")
	fmt.Printf("Open http://localhost:%s/news_demo.html to test the extension\n", cfg.API.Port)
	fmt.Println("Press Ctrl+C to stop the server")
}
