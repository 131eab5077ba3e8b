package v1

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rigelshaw/ScriptGuard/internal/metrics"
)

const trackMessage = "Tracked by ScriptGuard demo server"

// The payload body is what the demo extension is supposed to flag: a fixed
// prefix followed by exactly 100 'x' characters, identical on every call.
var minerPayloadBody = "miner-payload-" + strings.Repeat("x", 100)

type Handler struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewHandler(logger *zap.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		metrics: metrics,
	}
}

// Track simulates an analytics beacon. The ts query value is echoed back as
// received; a missing ts defaults to the current wall clock in epoch
// milliseconds.
func (h *Handler) Track(c *fiber.Ctx) error {
	var ts any
	if c.Context().QueryArgs().Has("ts") {
		ts = c.Query("ts")
	} else {
		ts = time.Now().UnixMilli()
	}

	response := TrackResponse{
		Status:     "ok",
		Ts:         ts,
		ReceivedAt: time.Now().Format(time.RFC3339Nano),
		Message:    trackMessage,
	}

	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

	h.metrics.RecordTrackPing()
	h.logger.Info("[TRACK] Analytics ping received")

	return c.JSON(response)
}

// MinerPayload serves the deterministic fake miner payload.
func (h *Handler) MinerPayload(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)

	h.metrics.RecordMinerPayload()
	h.logger.Info("[MINER] Miner payload sent")

	return c.SendString(minerPayloadBody)
}
