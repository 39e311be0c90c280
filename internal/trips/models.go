package trips

import (
	"time"

	"github.com/google/uuid"

	"busline/internal/busroutes"
	"busline/internal/fleet"
)

// Trip is one scheduled departure of a bus on a route. Its seat capacity
// comes from the assigned bus and is immutable for the life of the trip.
type Trip struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RouteID    uuid.UUID `json:"route_id" gorm:"type:uuid;index;not null"`
	BusID      uuid.UUID `json:"bus_id" gorm:"type:uuid;not null"`
	TravelDate time.Time `json:"travel_date" gorm:"type:date;not null"`
	TravelTime string    `json:"travel_time" gorm:"type:varchar(5);not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Route *busroutes.Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	Bus   *fleet.Bus       `json:"bus,omitempty" gorm:"foreignKey:BusID"`
}

// TableName sets the table name for Trip
func (Trip) TableName() string {
	return "trips"
}

type CreateTripRequest struct {
	RouteID    string `json:"route_id" binding:"required,uuid"`
	BusID      string `json:"bus_id" binding:"required,uuid"`
	TravelDate string `json:"travel_date" binding:"required,datetime=2006-01-02"`
	TravelTime string `json:"travel_time" binding:"required,datetime=15:04"`
}

type TripListQuery struct {
	RouteID string `form:"route_id" binding:"omitempty,uuid"`
}

type TripResponse struct {
	ID         string `json:"id"`
	RouteID    string `json:"route_id"`
	BusID      string `json:"bus_id"`
	TravelDate string `json:"travel_date"`
	TravelTime string `json:"travel_time"`
	FromCity   string `json:"from_city,omitempty"`
	ToCity     string `json:"to_city,omitempty"`
	BusName    string `json:"bus_name,omitempty"`
	TotalSeats int    `json:"total_seats,omitempty"`
	LayoutType string `json:"layout_type,omitempty"`
}

func (t *Trip) ToResponse() TripResponse {
	resp := TripResponse{
		ID:         t.ID.String(),
		RouteID:    t.RouteID.String(),
		BusID:      t.BusID.String(),
		TravelDate: t.TravelDate.Format("2006-01-02"),
		TravelTime: t.TravelTime,
	}
	if t.Route != nil {
		resp.FromCity = t.Route.FromCity
		resp.ToCity = t.Route.ToCity
	}
	if t.Bus != nil {
		resp.BusName = t.Bus.BusName
		resp.TotalSeats = t.Bus.TotalSeats
		resp.LayoutType = t.Bus.LayoutType
	}
	return resp
}
