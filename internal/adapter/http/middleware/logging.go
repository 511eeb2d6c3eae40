package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"quote_service/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
)

// Logging stores logger in the request context (under any request ID already
// attached) and logs each completed request. Paths in skipPaths are served
// without a completion log.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqLogger := logger
		if id := GetRequestID(c); id != "" {
			reqLogger = logger.With(slog.String("request_id", id))
		}
		c.Request = c.Request.WithContext(logging.WithContext(ctx, reqLogger))

		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		reqLogger.Log(c.Request.Context(), level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
