package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projectvault/app"
)

// HealthCheck reports whether the catalog store answers.
func HealthCheck(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.Gateway.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "connected"})
	}
}
