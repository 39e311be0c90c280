package fleet

import (
	"net/http"

	"busline/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	CreateBus(c *gin.Context)
	GetAllBuses(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateBus(c *gin.Context) {
	var req CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	bus, err := ctrl.service.CreateBus(c.Request.Context(), req)
	if err != nil {
		if err == ErrPlateExists {
			response.RespondJSON(c, "error", http.StatusConflict, "Plate number already exists", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create bus", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Bus created successfully", bus, nil)
}

func (ctrl *controller) GetAllBuses(c *gin.Context) {
	buses, err := ctrl.service.GetAllBuses(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch buses", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Buses retrieved successfully", buses, nil)
}
