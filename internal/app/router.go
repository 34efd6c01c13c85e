package app

import (
	"eduflow_backend/internal/config"
	"eduflow_backend/internal/middleware"
	"eduflow_backend/internal/model"
	"eduflow_backend/pkg/monitoring"

	_ "eduflow_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", c.health.Check)
	api.POST("/register", c.auth.Register)
	api.POST("/login", c.auth.Login)

	// Public catalog reads. TryAuth attaches claims when present so the
	// handlers can personalize, but anonymous requests pass through.
	public := api.Group("/courses")
	public.Use(middleware.TryAuthMiddleware(cfg))
	{
		public.GET("", c.course.List)
		public.GET("/:id", c.course.Detail)
		public.GET("/:id/lessons", c.lesson.List)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/profile", c.user.GetProfile)
		authed.PUT("/profile", c.user.UpdateProfile)
		authed.POST("/profile/avatar", c.user.UploadAvatar)
		authed.GET("/dashboard", c.dashboard.Summary)
		authed.POST("/ai/generate-description", c.ai.GenerateDescription)

		// Course creation is educator-only; updates and deletes also admit
		// admins, with per-row ownership enforced in the service.
		authed.POST("/courses", middleware.RoleMiddleware(model.RoleEducator), c.course.Create)
		authed.PUT("/courses/:id", middleware.RoleMiddleware(model.RoleEducator, model.RoleAdmin), c.course.Update)
		authed.DELETE("/courses/:id", middleware.RoleMiddleware(model.RoleEducator, model.RoleAdmin), c.course.Delete)
		authed.POST("/courses/:id/thumbnail", middleware.RoleMiddleware(model.RoleEducator, model.RoleAdmin), c.course.UploadThumbnail)

		// Lesson writes stay educator-only; there is no admin override on
		// lesson management.
		authed.POST("/courses/:id/lessons", middleware.RoleMiddleware(model.RoleEducator), c.lesson.Create)
		authed.PUT("/courses/:id/lessons/:lessonId", middleware.RoleMiddleware(model.RoleEducator), c.lesson.Update)
		authed.DELETE("/courses/:id/lessons/:lessonId", middleware.RoleMiddleware(model.RoleEducator), c.lesson.Delete)

		authed.GET("/enrollments", middleware.RoleMiddleware(model.RoleStudent), c.enrollment.List)
		authed.POST("/enrollments", middleware.RoleMiddleware(model.RoleStudent), c.enrollment.Enroll)
		authed.PUT("/enrollments/:id", middleware.RoleMiddleware(model.RoleStudent), c.enrollment.UpdateProgress)
		authed.DELETE("/enrollments/:id", middleware.RoleMiddleware(model.RoleStudent), c.enrollment.Unenroll)
	}
}
