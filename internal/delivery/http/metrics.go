package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"school-backend/internal/apperrors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method and route.",
		},
		[]string{"method", "path"},
	)

	requestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status class.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		},
	)
)

// MetricsMiddleware records request counts and latencies, labeled by the
// registered route so path parameters do not explode cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			method := c.Request().Method

			requestsInFlight.Inc()
			defer requestsInFlight.Dec()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			requestsTotal.WithLabelValues(method, path).Inc()

			status := c.Response().Status
			if err != nil {
				if domainErr, ok := apperrors.AsDomainError(err); ok {
					status = domainErr.HTTPStatus()
				} else if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			statusClass := fmt.Sprintf("%dxx", status/100)
			requestDurationSeconds.WithLabelValues(method, path, statusClass).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
