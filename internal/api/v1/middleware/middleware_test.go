package middleware_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rigelshaw/ScriptGuard/internal/api/v1/middleware"
)

func TestCORS_AppliedToAllResponses(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(zap.NewNop()),
	})
	app.Use(middleware.CORS())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "boom")
	})

	for _, path := range []string{"/ok", "/boom", "/no-such-route"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin), path)
	}
}

func TestRequestLogger_WritesServerLine(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "[SERVER] GET /ping 200", logs.All()[0].Message)
}

func TestRequestLogger_LogsNotFoundStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "[SERVER] GET /nope 404", logs.All()[0].Message)
}

func TestErrorHandler_RendersJSON(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(zap.NewNop()),
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Not Found", body.Error)
}
