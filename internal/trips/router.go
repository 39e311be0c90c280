package trips

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTripRoutes(rg *gin.RouterGroup, cfg *config.Config, controller Controller) {
	// Public routes - passengers browse departures
	publicTrips := rg.Group("/trips")
	{
		publicTrips.GET("", controller.GetAllTrips)
		publicTrips.GET("/:tripId", controller.GetTrip)
	}

	// Admin routes - schedule management
	adminTrips := rg.Group("/admin/trips")
	adminTrips.Use(middleware.AdminAuth(cfg))
	{
		adminTrips.POST("", controller.CreateTrip)
		adminTrips.GET("", controller.GetAllTrips)
	}
}
