package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rnqayush/storefront-platform/pkg/telemetry"
)

// Metrics records a request counter and a latency histogram per route.
// Must be registered after telemetry.Init so the instruments bind to the
// real meter provider.
func Metrics() gin.HandlerFunc {
	requests, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http_requests_total",
		Description: "Total number of HTTP requests",
		Unit:        "{request}",
	})
	latency, _ := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request latency",
		Unit:        "s",
	})

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := []attribute.KeyValue{
			telemetry.MethodAttr(c.Request.Method),
			telemetry.RouteAttr(route),
			telemetry.StatusCodeAttr(c.Writer.Status()),
		}

		ctx := c.Request.Context()
		if requests != nil {
			requests.Inc(ctx, attrs...)
		}
		if latency != nil {
			latency.Record(ctx, time.Since(start).Seconds(), attrs...)
		}
	}
}
