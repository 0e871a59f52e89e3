package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"projectvault/logging"
)

const RequestIDHeader = "X-Request-Id"

// RequestID makes sure every request carries an id. An incoming
// X-Request-Id is kept, otherwise a new one is generated. The id is echoed
// in the response, stored on the request context for logging.Ctx and logged
// with the request outcome.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if strings.TrimSpace(rid) == "" {
			rid = logging.NewRequestID()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		logging.Ctx(c.Request.Context()).Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
