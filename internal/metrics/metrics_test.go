package metrics_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rigelshaw/ScriptGuard/internal/metrics"
)

func TestHTTPMetricsMiddleware_RecordsRequests(t *testing.T) {
	m := metrics.NewMetrics()

	app := fiber.New()
	app.Use(metrics.HTTPMetricsMiddleware(m, zap.NewNop()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestBusinessCounters(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordTrackPing()
	m.RecordTrackPing()
	m.RecordMinerPayload()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.TrackPingsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MinerPayloadsTotal))
}
