package busroutes

import (
	"net/http"

	"busline/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateRoute(c *gin.Context)
	GetAllRoutes(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	route, err := ctrl.service.CreateRoute(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create route", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Route created successfully", route, nil)
}

func (ctrl *controller) GetAllRoutes(c *gin.Context) {
	routes, err := ctrl.service.GetAllRoutes(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch routes", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Routes retrieved successfully", routes, nil)
}
