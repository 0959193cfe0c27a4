package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "version_counter"

// Outcomes of a version count request.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics provides a self-contained Prometheus registry with HTTP and
// version count collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg      *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	counts   *prometheus.CounterVec
	pages    prometheus.Counter
}

// New creates a Metrics instance with a fresh registry and registers collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed, partitioned by route, method and status code.",
	}, []string{"route", "method", "code"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Histogram of latencies for HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
	counts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "versions",
		Name:      "count_requests_total",
		Help:      "Version count requests, partitioned by outcome.",
	}, []string{"outcome"})
	pages := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "versions",
		Name:      "listed_pages_total",
		Help:      "Object listing pages fetched from the bucket.",
	})

	reg.MustRegister(requests, latency, counts, pages)

	return &Metrics{
		reg:      reg,
		requests: requests,
		latency:  latency,
		counts:   counts,
		pages:    pages,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}

// Middleware records request totals and latency per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
		}

		route := c.Route().Path
		m.requests.WithLabelValues(route, c.Method(), strconv.Itoa(code)).Inc()
		m.latency.WithLabelValues(route, c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObserveCount records the outcome of a version count request.
func (m *Metrics) ObserveCount(outcome string) {
	if m == nil {
		return
	}
	m.counts.WithLabelValues(outcome).Inc()
}

// ObservePages records fetched listing pages.
func (m *Metrics) ObservePages(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pages.Add(float64(n))
}
