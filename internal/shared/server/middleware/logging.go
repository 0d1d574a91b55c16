package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":     RequestIDFromContext(c),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"route":          c.FullPath(),
			"status":         c.Writer.Status(),
			"duration_ms":    float64(latency.Microseconds()) / 1000.0,
			"measurement_id": c.GetString("measurementId"),
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
		}
		if subject := AdminSubjectFromContext(c); subject != "" {
			fields["admin"] = subject
		}
		if outcome := c.GetString("outcome"); outcome != "" {
			fields["outcome"] = outcome
		}

		telemetry.Info("request.complete", fields)
	}
}
