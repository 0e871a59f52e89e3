package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"projectvault/app"
	"projectvault/gateway"
	"projectvault/logging"
	"projectvault/models"
)

type listParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func retryable(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, gin.H{"error": message, "action": "retry"})
}

func ListProjects(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters models.ProjectFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, errText := a.ProjectList(c.Request.Context(), filters, app.ParseTab(c.Query("tab")))
		if errText != "" {
			retryable(c, errText)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func GetProject(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		project, err := a.Gateway.GetProjectByID(ctx, c.Param("id"))
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		if err != nil {
			retryable(c, err.Error())
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func SearchProjects(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Search.Search(c.Request.Context(), c.Query("q"))

		state := a.Search.State()
		if state.Error != "" {
			retryable(c, state.Error)
			return
		}

		c.JSON(http.StatusOK, state)
	}
}

func ListCategories(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Categories.Load(c.Request.Context())

		state := a.Categories.State()
		if state.Error != "" {
			retryable(c, state.Error)
			return
		}

		c.JSON(http.StatusOK, gin.H{"categories": state.Data})
	}
}

func ListYears(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Years.Load(c.Request.Context())

		state := a.Years.State()
		if state.Error != "" {
			retryable(c, state.Error)
			return
		}

		c.JSON(http.StatusOK, gin.H{"years": state.Data})
	}
}

func TrendingProjects(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params listParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projects, err := a.Gateway.TrendingProjects(c.Request.Context(), params.Limit)
		if err != nil {
			retryable(c, err.Error())
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{Projects: projects, Total: len(projects)})
	}
}

func RecentProjects(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params listParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projects, err := a.Gateway.RecentProjects(c.Request.Context(), params.Limit)
		if err != nil {
			retryable(c, err.Error())
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{Projects: projects, Total: len(projects)})
	}
}

// ToggleLike flips the liked status. A failed or rolled-back toggle answers
// 502 with the same body so the client can show the toast either way.
func ToggleLike(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		res := a.ToggleLike(ctx, c.Param("id"))

		body := gin.H{
			"project_id": res.ProjectID,
			"liked":      res.Liked,
			"state":      res.State,
		}
		if toast, ok := a.Toast(); ok {
			body["toast"] = toast
		}

		if res.Err != nil {
			logging.Ctx(ctx).Warn().Err(res.Err).Str("project_id", res.ProjectID).Msg("Like rolled back")
			body["error"] = res.Err.Error()
			body["action"] = "retry"
			c.JSON(http.StatusBadGateway, body)
			return
		}

		c.JSON(http.StatusOK, body)
	}
}
