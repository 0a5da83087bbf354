package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/metrics"
)

// Metrics records request latency per method, route template, and status
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.ObserveRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
