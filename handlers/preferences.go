package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projectvault/app"
	"projectvault/logging"
	"projectvault/models"
)

func GetPreferences(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefs, err := a.Preferences(c.Request.Context())
		if err != nil {
			logging.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to read preferences")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read preferences"})
			return
		}

		c.JSON(http.StatusOK, prefs)
	}
}

func SetTheme(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ThemeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		if err := a.SetDarkMode(ctx, *req.Dark); err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("Failed to save theme")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
			return
		}

		prefs, err := a.Preferences(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read preferences"})
			return
		}
		c.JSON(http.StatusOK, prefs)
	}
}

func GetToast(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		toast, ok := a.Toast()
		if !ok {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, toast)
	}
}

func DismissToast(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.DismissToast()
		c.Status(http.StatusNoContent)
	}
}
