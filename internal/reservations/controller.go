package reservations

import (
	"errors"
	"net/http"

	"busline/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	Reserve(c *gin.Context)
	GetSeatMap(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "trip_id, seat_number, passenger_name, contact_phone are required", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.Reserve(c.Request.Context(), req)
	if err != nil {
		status, message := reserveErrorStatus(err)
		response.RespondJSON(c, "error", status, message, nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation confirmed", reservation, nil)
}

func (ctrl *controller) GetSeatMap(c *gin.Context) {
	seatMap, err := ctrl.service.ListTaken(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Trip not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch seat map", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

// reserveErrorStatus maps each error kind to its HTTP treatment. Every
// outcome of a reserve call lands in exactly one branch.
func reserveErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "trip_id, seat_number, passenger_name, contact_phone are required"
	case errors.Is(err, ErrTripNotFound):
		return http.StatusNotFound, "Trip not found"
	case errors.Is(err, ErrSeatOutOfRange):
		return http.StatusBadRequest, "Seat number is out of range for this trip"
	case errors.Is(err, ErrSeatTaken):
		return http.StatusConflict, "Seat already taken. Please choose another seat."
	case errors.Is(err, ErrCodeExhausted):
		return http.StatusServiceUnavailable, "Please try again"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
