package fleet

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBusRoutes(rg *gin.RouterGroup, cfg *config.Config, controller Controller) {
	// Admin routes - fleet management is admin-only
	adminBuses := rg.Group("/admin/buses")
	adminBuses.Use(middleware.AdminAuth(cfg))
	{
		adminBuses.POST("", controller.CreateBus)
		adminBuses.GET("", controller.GetAllBuses)
	}
}
