package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"runtime-report/internal/observability/metrics"
)

// Logger logs each request and feeds the request counter.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		log.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), statusClass(status))
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
