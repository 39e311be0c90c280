package reservations

import (
	"time"

	"github.com/google/uuid"
)

// Reservation statuses. Only ACTIVE reservations are created in the current
// flow; CANCELLED exists as the extension point for a cancellation flow.
const (
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
)

// Reservation is one passenger's claim on one seat of one trip. The
// (trip_id, seat_number) and confirmation_code unique constraints are
// applied by database.MigrateConstraints and are what make the insert path
// safe under concurrency.
type Reservation struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TripID           uuid.UUID `json:"trip_id" gorm:"type:uuid;not null"`
	SeatNumber       int       `json:"seat_number" gorm:"not null;check:seat_number > 0"`
	PassengerName    string    `json:"passenger_name" gorm:"not null;size:255"`
	ContactPhone     string    `json:"contact_phone" gorm:"not null;size:32"`
	ConfirmationCode string    `json:"confirmation_code" gorm:"not null;size:32"`
	Status           string    `json:"status" gorm:"type:varchar(20);check:status IN ('ACTIVE', 'CANCELLED');default:'ACTIVE'"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// ReserveRequest is the inbound payload for reserving a seat. Presence and
// shape checks happen here via binding tags; semantic checks (trip exists,
// seat in range) happen in the service.
type ReserveRequest struct {
	TripID        string `json:"trip_id" binding:"required"`
	SeatNumber    int    `json:"seat_number" binding:"required"`
	PassengerName string `json:"passenger_name" binding:"required"`
	ContactPhone  string `json:"contact_phone" binding:"required"`
}

// ReservationResponse is returned on a successful reserve call.
type ReservationResponse struct {
	ReservationID    string    `json:"reservation_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	TripID           string    `json:"trip_id"`
	SeatNumber       int       `json:"seat_number"`
	CreatedAt        time.Time `json:"created_at"`
}

// SeatMapResponse lists the taken seats of a trip alongside its capacity.
type SeatMapResponse struct {
	TakenSeats []int `json:"taken_seats"`
	TotalSeats int   `json:"total_seats"`
}
