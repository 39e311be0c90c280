package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"busline/internal/trips"
)

type stubTripService struct {
	trips.Service
	capacity int
	err      error
}

func (s *stubTripService) GetCapacity(context.Context, uuid.UUID) (int, error) {
	return s.capacity, s.err
}

func TestTripCapacityProvider(t *testing.T) {
	provider := NewTripCapacityProvider(&stubTripService{capacity: 40})

	capacity, err := provider.GetCapacity(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetCapacity returned error: %v", err)
	}
	if capacity != 40 {
		t.Fatalf("expected 40, got %d", capacity)
	}
}

func TestTripCapacityProviderNotFound(t *testing.T) {
	provider := NewTripCapacityProvider(&stubTripService{err: trips.ErrTripNotFound})

	_, err := provider.GetCapacity(context.Background(), uuid.New())
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected trip not found translation, got %v", err)
	}
}

func TestTripCapacityProviderPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	provider := NewTripCapacityProvider(&stubTripService{err: boom})

	_, err := provider.GetCapacity(context.Background(), uuid.New())
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}
}
