package middleware

import (
	"strconv"
	"time"

	"sundar_marbles/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics records request counts and latency per API route.
// The scrape and health endpoints are excluded so the series track real
// traffic. Requests that match no route share one "unmatched" label to
// keep cardinality bounded.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		route := c.Path()
		if route == "/metrics" || route == "/health" {
			return next(c)
		}
		if route == "" {
			route = "unmatched"
		}

		start := time.Now()
		err := next(c)

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			route,
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			route,
		).Observe(time.Since(start).Seconds())

		return err
	}
}
