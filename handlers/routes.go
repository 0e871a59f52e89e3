package handlers

import (
	"github.com/gin-gonic/gin"

	"projectvault/app"
)

func Register(r gin.IRouter, a *app.App) {
	r.GET("/health", HealthCheck(a))

	r.GET("/projects", ListProjects(a))
	r.GET("/projects/:id", GetProject(a))
	r.POST("/projects/:id/like", ToggleLike(a))
	r.GET("/projects/:id/rating", GetRating(a))
	r.PUT("/projects/:id/rating", RateProject(a))

	r.GET("/search", SearchProjects(a))
	r.GET("/categories", ListCategories(a))
	r.GET("/years", ListYears(a))
	r.GET("/trending", TrendingProjects(a))
	r.GET("/recent", RecentProjects(a))

	r.GET("/preferences", GetPreferences(a))
	r.PUT("/preferences/theme", SetTheme(a))
	r.GET("/toast", GetToast(a))
	r.DELETE("/toast", DismissToast(a))
}
