package app

import (
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/middleware"
	"learnpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/resources", c.resource.ListResources)
		public.GET("/resources/:id", c.resource.GetResource)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, s.session))
	{
		authGroup.GET("/auth/profile", c.auth.GetProfile)
		authGroup.POST("/auth/logout", c.auth.Logout)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)

		authGroup.POST("/paths/generate", c.path.GeneratePath)
		authGroup.GET("/paths/active", c.path.GetActivePath)
		authGroup.PUT("/paths/nodes/:nodeId", c.path.UpdateNode)
	}
}
