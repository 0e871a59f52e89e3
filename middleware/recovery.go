package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projectvault/logging"
)

// Recovery is the last-resort error boundary: a panic in any handler is
// logged and rendered as a generic retryable error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Uncaught error")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":  "Something went wrong",
			"action": "retry",
		})
	})
}
