package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pablasso/taskapp/internal/store"
	"github.com/rs/zerolog"
)

// RequestLogger echoes (or assigns) the request id and logs each request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(store.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(store.RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		event := log.Info()
		if len(c.Errors) > 0 {
			event = log.Error().Str("errors", c.Errors.String())
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
