// Package middleware contains shared Gin middleware for the HTTP layer.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Gin context keys and the correlation header. The "logger" key carries the
// request-scoped zerolog.Logger attached by Logger().
const (
	requestIDKey    = "requestID"
	loggerKey       = "logger"
	requestIDHeader = "X-Request-ID"

	// Raw query strings are capped in logs.
	maxQueryLogLength = 2048
)

// RequestID gives every request a correlation ID. An incoming X-Request-ID is
// reused so that IDs survive proxies and retries; otherwise a UUIDv4 is
// generated. The ID is echoed on the response header and stored in the Gin
// context for Logger and Recovery to pick up, so this must run first in the
// chain.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// Logger emits one structured access log line per request and attaches a
// request-scoped zerolog.Logger for downstream code. The line carries method,
// route, remote IP, user agent, correlation ID, sizes, status and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		l := requestLogger(c)
		c.Set(loggerKey, &l)

		c.Next()

		emitAccessLog(c, l, time.Since(start))
	}
}

// requestLogger builds the logger shared by the access line and handlers.
func requestLogger(c *gin.Context) zerolog.Logger {
	rid, _ := c.Get(requestIDKey)
	route := c.FullPath()
	if route == "" {
		// Unmatched route; log the raw path instead.
		route = c.Request.URL.Path
	}
	return log.With().
		Str("request_id", ctxString(rid)).
		Str("method", c.Request.Method).
		Str("path", route).
		Str("remote_ip", c.ClientIP()).
		Str("user_agent", c.Request.UserAgent()).
		Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
		Int64("bytes_in", c.Request.ContentLength).
		Logger()
}

// emitAccessLog picks the level from the outcome: error for collected Gin
// errors or 5xx, warn for 4xx, info otherwise.
func emitAccessLog(c *gin.Context, l zerolog.Logger, latency time.Duration) {
	status := c.Writer.Status()
	ev := l.With().
		Int("status", status).
		Dur("latency", latency).
		Int("bytes_out", c.Writer.Size()).
		Logger()

	switch {
	case len(c.Errors) > 0:
		ev.Error().Str("errors", c.Errors.String()).Msg("request")
	case status >= 500:
		ev.Error().Msg("request")
	case status >= 400:
		ev.Warn().Msg("request")
	default:
		ev.Info().Msg("request")
	}
}

// Recovery turns panics into JSON 500 responses that still carry the
// correlation ID, and logs the stack trace. If a partial response has already
// been written only the status is forced.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid, _ := c.Get(requestIDKey)
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", ctxString(rid)).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header("Content-Type", "application/json")
			c.Header(requestIDHeader, ctxString(rid))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": ctxString(rid),
				"code":       "internal_error",
				"message":    "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger attached by Logger, falling
// back to the global logger so callers never need a nil check.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

func ctxString(v any) string {
	s, _ := v.(string)
	return s
}

// truncate caps s at max bytes, appending an ellipsis. max <= 0 disables it.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
