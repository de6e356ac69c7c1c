package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/shiprate-service/internal/logger"
)

// RequestLogger returns a middleware that logs one structured line per HTTP
// request: request ID, method, path, status code, latency, IP and user agent.
// Requests to skipPaths (probes, metrics scrapes) are only logged on failure.
func RequestLogger(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok && statusCode < 400 {
			return
		}

		log := logger.Logger()
		event := log.WithLevel(getLogLevel(statusCode)).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if admin := GetAdminIdentity(c); admin != "" {
			event = event.Str("admin", admin)
		}
		event.Msg("HTTP request")
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
