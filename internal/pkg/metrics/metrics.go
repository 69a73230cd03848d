package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stridemap",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stridemap",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response size in bytes",
		Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	// Annotation metrics
	PathsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "paths",
		Name:      "created_total",
		Help:      "Total paths created from draw-tool finish events",
	})

	PathsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "paths",
		Name:      "deleted_total",
		Help:      "Total paths deleted, by origin of the deletion",
	}, []string{"origin"}) // "sidebar" | "tool" | "clear" | "undo"

	PathsRestored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "paths",
		Name:      "restored_total",
		Help:      "Total paths restored by undo",
	})

	UndoApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "undo",
		Name:      "applied_total",
		Help:      "Total undo actions applied, by action kind",
	}, []string{"kind"})

	LabelsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "labels",
		Name:      "placed_total",
		Help:      "Total label markers placed on the map surface",
	})

	DrawEventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stridemap",
		Subsystem: "draw",
		Name:      "events_consumed_total",
		Help:      "Total draw-tool events consumed from the broker",
	}, []string{"type"})

	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "stridemap",
		Subsystem: "ws",
		Name:      "active_connections",
		Help:      "Current number of active WebSocket connections",
	})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(len(c.Response().Body())))

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
