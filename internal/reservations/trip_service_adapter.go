package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"busline/internal/trips"
)

// tripServiceAdapter bridges the trips service to the CapacityProvider
// contract, translating its not-found error into this package's kind.
type tripServiceAdapter struct {
	trips trips.Service
}

// NewTripCapacityProvider wraps the trips service as a CapacityProvider.
func NewTripCapacityProvider(svc trips.Service) CapacityProvider {
	return &tripServiceAdapter{trips: svc}
}

func (a *tripServiceAdapter) GetCapacity(ctx context.Context, tripID uuid.UUID) (int, error) {
	capacity, err := a.trips.GetCapacity(ctx, tripID)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return 0, ErrTripNotFound
		}
		return 0, err
	}
	return capacity, nil
}
