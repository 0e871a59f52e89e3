package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"projectvault/app"
	"projectvault/gateway"
	"projectvault/models"
)

func GetRating(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, a.UserRating(c.Request.Context(), c.Param("id")))
	}
}

func RateProject(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state, err := a.RateProject(c.Request.Context(), c.Param("id"), req.Rating)
		var vErr *gateway.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "rating": state})
			return
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "action": "retry", "rating": state})
			return
		}

		c.JSON(http.StatusOK, state)
	}
}
