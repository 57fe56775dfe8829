package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/mvg/pkg/api/routes"
)

type Metrics struct {
	reg *prometheus.Registry

	Requests        *prometheus.CounterVec // route, status
	RequestDuration *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec // kind
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvg_api_requests_total",
			Help: "Total HTTP requests served.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mvg_api_request_duration_seconds",
			Help:    "Duration of HTTP requests including the upstream call.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"route"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvg_upstream_errors_total",
			Help: "Failed upstream requests by failure kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.Requests, m.RequestDuration, m.UpstreamErrors)

	return m
}

func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		err := c.Next()

		route := c.Route().Path
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(startTime).Seconds())

		if kind, ok := c.Locals(routes.LocalsUpstreamErrorKey).(string); ok {
			m.UpstreamErrors.WithLabelValues(kind).Inc()
		}

		return err
	}
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}
