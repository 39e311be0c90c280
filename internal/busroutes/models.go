package busroutes

import (
	"time"

	"github.com/google/uuid"
)

// Route is a city pair served by the operator.
type Route struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FromCity  string    `json:"from_city" gorm:"not null;size:255"`
	ToCity    string    `json:"to_city" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Route
func (Route) TableName() string {
	return "routes"
}

type CreateRouteRequest struct {
	FromCity string `json:"from_city" binding:"required,min=2,max=255"`
	ToCity   string `json:"to_city" binding:"required,min=2,max=255"`
}

type RouteResponse struct {
	ID        string    `json:"id"`
	FromCity  string    `json:"from_city"`
	ToCity    string    `json:"to_city"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Route) ToResponse() RouteResponse {
	return RouteResponse{
		ID:        r.ID.String(),
		FromCity:  r.FromCity,
		ToCity:    r.ToCity,
		CreatedAt: r.CreatedAt,
	}
}
