package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	TrackPingsTotal    prometheus.Counter
	MinerPayloadsTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptguard_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scriptguard_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "scriptguard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		TrackPingsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scriptguard_track_pings_total",
				Help: "Total number of analytics pings received on /fake/track",
			},
		),
		MinerPayloadsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scriptguard_miner_payloads_total",
				Help: "Total number of miner payloads served from /fake/miner_payload",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

func (m *Metrics) RecordTrackPing() {
	m.TrackPingsTotal.Inc()
}

func (m *Metrics) RecordMinerPayload() {
	m.MinerPayloadsTotal.Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
