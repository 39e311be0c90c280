package trips

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTripNotFound = errors.New("trip not found")

type Service interface {
	CreateTrip(ctx context.Context, req CreateTripRequest) (*TripResponse, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*TripResponse, error)
	GetAllTrips(ctx context.Context, query TripListQuery) ([]TripResponse, error)

	// GetCapacity resolves a trip identifier to its total seat count. It is
	// the capacity lookup the reservation core depends on.
	GetCapacity(ctx context.Context, tripID uuid.UUID) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTrip(ctx context.Context, req CreateTripRequest) (*TripResponse, error) {
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, errors.New("invalid route ID")
	}

	busID, err := uuid.Parse(req.BusID)
	if err != nil {
		return nil, errors.New("invalid bus ID")
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, errors.New("travel_date must be YYYY-MM-DD")
	}

	trip := &Trip{
		RouteID:    routeID,
		BusID:      busID,
		TravelDate: travelDate,
		TravelTime: req.TravelTime,
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}

	resp := trip.ToResponse()
	return &resp, nil
}

func (s *service) GetTrip(ctx context.Context, tripID uuid.UUID) (*TripResponse, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	resp := trip.ToResponse()
	return &resp, nil
}

func (s *service) GetAllTrips(ctx context.Context, query TripListQuery) ([]TripResponse, error) {
	trips, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, trip.ToResponse())
	}
	return responses, nil
}

func (s *service) GetCapacity(ctx context.Context, tripID uuid.UUID) (int, error) {
	return s.repo.GetBusCapacity(ctx, tripID)
}
