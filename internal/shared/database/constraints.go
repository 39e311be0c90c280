package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Unique index that prevents double booking of a seat on the same trip.
	// The reservation insert path relies on this index being the single
	// arbiter between concurrent requests; the names surface as constraint
	// names in unique violations and are part of the repository's conflict
	// classification, so they must not change.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_reservation_trip_seat
		ON reservations (trip_id, seat_number);
	`).Error
	if err != nil {
		return err
	}

	// Confirmation codes are globally unique across all reservations.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_reservation_confirmation_code
		ON reservations (confirmation_code);
	`).Error
	if err != nil {
		return err
	}

	// Index for seat availability queries by trip
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_reservations_trip_id
		ON reservations (trip_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
