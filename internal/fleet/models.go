package fleet

import (
	"time"

	"github.com/google/uuid"
)

// Bus is a vehicle with a fixed linear seat numbering 1..TotalSeats.
type Bus struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BusName     string    `json:"bus_name" gorm:"not null;size:255"`
	PlateNumber string    `json:"plate_number" gorm:"uniqueIndex;not null;size:32"`
	TotalSeats  int       `json:"total_seats" gorm:"not null;check:total_seats > 0"`
	LayoutType  string    `json:"layout_type" gorm:"type:varchar(10);default:'2x3'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Bus
func (Bus) TableName() string {
	return "buses"
}

type CreateBusRequest struct {
	BusName     string `json:"bus_name" binding:"required,min=2,max=255"`
	PlateNumber string `json:"plate_number" binding:"required,min=2,max=32"`
	TotalSeats  int    `json:"total_seats" binding:"omitempty,min=1,max=100"`
	LayoutType  string `json:"layout_type" binding:"omitempty,oneof=2x3"`
}

type BusResponse struct {
	ID          string    `json:"id"`
	BusName     string    `json:"bus_name"`
	PlateNumber string    `json:"plate_number"`
	TotalSeats  int       `json:"total_seats"`
	LayoutType  string    `json:"layout_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Bus) ToResponse() BusResponse {
	return BusResponse{
		ID:          b.ID.String(),
		BusName:     b.BusName,
		PlateNumber: b.PlateNumber,
		TotalSeats:  b.TotalSeats,
		LayoutType:  b.LayoutType,
		CreatedAt:   b.CreatedAt,
	}
}
