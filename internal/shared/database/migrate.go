package database

import (
	"busline/internal/admins"
	"busline/internal/busroutes"
	"busline/internal/fleet"
	"busline/internal/reservations"
	"busline/internal/trips"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&admins.Admin{},
		&busroutes.Route{},
		&fleet.Bus{},
		&trips.Trip{},
		&reservations.Reservation{},
	)
}
