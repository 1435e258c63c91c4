package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinetheque/internal/handler"
	"github.com/user/cinetheque/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ==================== 目录查询 ====================
		api.GET("/films", h.ListFilms)
		api.GET("/films/:imdb", h.GetFilm)
		api.GET("/persons", h.ListPersons)
		api.GET("/persons/:id", h.GetPerson)
		api.GET("/actors", h.ListActors)
		api.GET("/actors/:id", h.GetActor)
		api.GET("/directors", h.ListDirectors)
		api.GET("/genres", h.ListGenres)
		api.GET("/countries", h.ListCountries)

		// ==================== 认证 ====================
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
		}

		// ==================== 导入管理（仅管理员）====================
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(h.Config.AppSecret), middleware.RequireAdmin())
		{
			admin.POST("/import/films", h.ImportFilms)
			admin.POST("/import/actors", h.ImportActors)
			admin.POST("/import/directors", h.ImportDirectors)
			admin.GET("/imports", h.ListImportRuns)
		}
	}
}
