package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const slowRequestThreshold = time.Second

// HTTPMetricsMiddleware records a counter and latency histogram per route
// and keeps an in-flight gauge.
func HTTPMetricsMiddleware(metrics *Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		// Route().Path keeps label cardinality bounded; raw paths carry IDs.
		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		status := strconv.Itoa(c.Response().StatusCode())

		metrics.RecordHTTPRequest(c.Method(), route, status, elapsed)

		if elapsed > slowRequestThreshold {
			logger.Warn("slow HTTP request",
				zap.String("method", c.Method()),
				zap.String("route", route),
				zap.String("status", status),
				zap.Duration("elapsed", elapsed))
		}

		return err
	}
}
