package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers admin authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	authGroup := rg.Group("/admin/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
	}
}
