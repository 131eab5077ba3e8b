package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rigelshaw/ScriptGuard/internal/api/v1/middleware"
)

func NewApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})
}
