package busroutes

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRouteRoutes(rg *gin.RouterGroup, cfg *config.Config, controller Controller) {
	// Public routes - anyone can browse the served city pairs
	publicRoutes := rg.Group("/routes")
	{
		publicRoutes.GET("", controller.GetAllRoutes)
	}

	// Admin routes - only admins can define routes
	adminRoutes := rg.Group("/admin/routes")
	adminRoutes.Use(middleware.AdminAuth(cfg))
	{
		adminRoutes.POST("", controller.CreateRoute)
		adminRoutes.GET("", controller.GetAllRoutes)
	}
}
