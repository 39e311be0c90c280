package reservations

import (
	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(rg *gin.RouterGroup, controller Controller) {
	// Public routes - passengers reserve seats and view seat maps
	rg.POST("/reservations", controller.Reserve)
	rg.GET("/trips/:tripId/seats", controller.GetSeatMap)
}
