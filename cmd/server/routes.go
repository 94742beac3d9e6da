package main

import (
	"time"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/handlers"
	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func setupRouter(cfg *config.Config, authHandler *handlers.AuthHandler) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	r.MaxMultipartMemory = 8 << 20

	db := models.GetDB()
	cache := services.NewContentCache(5*time.Minute, 10*time.Minute)
	uploadService := services.NewUploadService(&cfg.Upload)

	projectHandler := handlers.NewProjectHandler(db, cache, uploadService)
	skillHandler := handlers.NewSkillHandler(db, cache)
	categoryHandler := handlers.NewCategoryHandler(db, cache)
	blogHandler := handlers.NewBlogHandler(db, cache, uploadService)
	videoHandler := handlers.NewVideoHandler(db, cache)
	contactHandler := handlers.NewContactHandler(db)
	userHandler := handlers.NewUserHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	logHandler := handlers.NewSystemLogHandler(db)
	configHandler := handlers.NewSystemConfigHandler(db)
	healthHandler := handlers.NewHealthHandler()

	r.GET("/health", healthHandler.CheckHealth)
	r.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	api := r.Group("/api")
	{
		// Public content
		api.GET("/projects", projectHandler.ListPublic)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.GET("/skills", skillHandler.List)
		api.GET("/categories", categoryHandler.List)
		api.GET("/blogs", blogHandler.ListPublic)
		api.GET("/blogs/featured", blogHandler.Featured)
		api.GET("/blogs/:slug", middleware.OptionalAuth(), blogHandler.GetBySlug)
		api.GET("/videos", videoHandler.List)

		// Contact form, rate limited per client IP
		contactLimiter := middleware.NewRateLimiter(1, 5)
		api.POST("/contacts", contactLimiter.Middleware(), contactHandler.Create)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)

			authed := auth.Group("")
			authed.Use(middleware.AuthRequired())
			{
				authed.GET("/me", authHandler.GetCurrentUser)
				authed.POST("/logout", authHandler.Logout)
				authed.POST("/change-password", authHandler.ChangePassword)
			}
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			admin.GET("/dashboard", dashboardHandler.GetStats)

			admin.GET("/projects", projectHandler.List)
			admin.GET("/projects/:id", projectHandler.GetByID)
			admin.POST("/projects", projectHandler.Create)
			admin.PUT("/projects/:id", projectHandler.Update)
			admin.DELETE("/projects/:id", projectHandler.Delete)

			admin.GET("/skills", skillHandler.List)
			admin.GET("/skills/:id", skillHandler.GetByID)
			admin.POST("/skills", skillHandler.Create)
			admin.PUT("/skills/:id", skillHandler.Update)
			admin.DELETE("/skills/:id", skillHandler.Delete)

			admin.GET("/categories", categoryHandler.List)
			admin.GET("/categories/:id", categoryHandler.GetByID)
			admin.POST("/categories", categoryHandler.Create)
			admin.PUT("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.GET("/blogs", blogHandler.List)
			admin.GET("/blogs/:id", blogHandler.GetByID)
			admin.POST("/blogs", blogHandler.Create)
			admin.PUT("/blogs/:id", blogHandler.Update)
			admin.DELETE("/blogs/:id", blogHandler.Delete)

			admin.GET("/videos", videoHandler.List)
			admin.GET("/videos/:id", videoHandler.GetByID)
			admin.POST("/videos", videoHandler.Create)
			admin.PUT("/videos/:id", videoHandler.Update)
			admin.DELETE("/videos/:id", videoHandler.Delete)

			admin.GET("/contacts", contactHandler.List)
			admin.GET("/contacts/unread-count", contactHandler.UnreadCount)
			admin.GET("/contacts/:id", contactHandler.GetByID)
			admin.PUT("/contacts/:id/read", contactHandler.MarkRead)
			admin.DELETE("/contacts/:id", contactHandler.Delete)

			admin.GET("/users", userHandler.List)
			admin.GET("/users/:id", userHandler.GetByID)
			admin.POST("/users", userHandler.Create)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			admin.GET("/logs", logHandler.List)
			admin.GET("/logs/modules", logHandler.GetModules)
			admin.GET("/logs/retention", logHandler.GetRetention)
			admin.PUT("/logs/retention", logHandler.SetRetention)
			admin.POST("/logs/cleanup", logHandler.Cleanup)

			admin.GET("/settings/notifications", configHandler.GetNotificationConfig)
			admin.PUT("/settings/notifications", configHandler.UpdateNotificationConfig)
		}
	}

	return r
}
