package trips

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, trip *Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*Trip, error)
	GetAll(ctx context.Context, query TripListQuery) ([]Trip, error)
	GetBusCapacity(ctx context.Context, tripID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, trip *Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	var trip Trip
	err := r.db.WithContext(ctx).
		Preload("Route").
		Preload("Bus").
		Where("id = ?", id).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *repository) GetAll(ctx context.Context, query TripListQuery) ([]Trip, error) {
	var trips []Trip

	baseQuery := r.db.WithContext(ctx).
		Preload("Route").
		Preload("Bus")

	if query.RouteID != "" {
		if routeID, err := uuid.Parse(query.RouteID); err == nil {
			baseQuery = baseQuery.Where("route_id = ?", routeID)
		}
	}

	err := baseQuery.
		Order("travel_date ASC").
		Order("travel_time ASC").
		Find(&trips).Error

	return trips, err
}

// GetBusCapacity resolves a trip to its bus's total seat count without
// loading the full trip aggregate.
func (r *repository) GetBusCapacity(ctx context.Context, tripID uuid.UUID) (int, error) {
	var totalSeats int
	err := r.db.WithContext(ctx).
		Table("trips").
		Select("buses.total_seats").
		Joins("JOIN buses ON buses.id = trips.bus_id").
		Where("trips.id = ?", tripID).
		Scan(&totalSeats).Error
	if err != nil {
		return 0, err
	}
	if totalSeats == 0 {
		return 0, ErrTripNotFound
	}
	return totalSeats, nil
}
