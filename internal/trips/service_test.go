package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeTripRepo struct {
	capacities map[uuid.UUID]int
	created    []*Trip
}

func (f *fakeTripRepo) Create(_ context.Context, trip *Trip) error {
	trip.ID = uuid.New()
	f.created = append(f.created, trip)
	return nil
}

func (f *fakeTripRepo) GetByID(_ context.Context, id uuid.UUID) (*Trip, error) {
	for _, trip := range f.created {
		if trip.ID == id {
			return trip, nil
		}
	}
	return nil, ErrTripNotFound
}

func (f *fakeTripRepo) GetAll(context.Context, TripListQuery) ([]Trip, error) {
	trips := make([]Trip, 0, len(f.created))
	for _, trip := range f.created {
		trips = append(trips, *trip)
	}
	return trips, nil
}

func (f *fakeTripRepo) GetBusCapacity(_ context.Context, tripID uuid.UUID) (int, error) {
	capacity, ok := f.capacities[tripID]
	if !ok {
		return 0, ErrTripNotFound
	}
	return capacity, nil
}

func TestCreateTrip(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewService(repo)

	resp, err := svc.CreateTrip(context.Background(), CreateTripRequest{
		RouteID:    uuid.New().String(),
		BusID:      uuid.New().String(),
		TravelDate: "2025-10-01",
		TravelTime: "08:30",
	})
	if err != nil {
		t.Fatalf("CreateTrip returned error: %v", err)
	}
	if resp.TravelDate != "2025-10-01" || resp.TravelTime != "08:30" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 trip persisted, got %d", len(repo.created))
	}
	if got := repo.created[0].TravelDate; !got.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected travel date: %v", got)
	}
}

func TestCreateTripRejectsBadInput(t *testing.T) {
	svc := NewService(&fakeTripRepo{})

	cases := []struct {
		name string
		req  CreateTripRequest
	}{
		{"bad route id", CreateTripRequest{RouteID: "abc", BusID: uuid.New().String(), TravelDate: "2025-10-01", TravelTime: "08:30"}},
		{"bad bus id", CreateTripRequest{RouteID: uuid.New().String(), BusID: "abc", TravelDate: "2025-10-01", TravelTime: "08:30"}},
		{"bad date", CreateTripRequest{RouteID: uuid.New().String(), BusID: uuid.New().String(), TravelDate: "01-10-2025", TravelTime: "08:30"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateTrip(context.Background(), tc.req); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetCapacity(t *testing.T) {
	tripID := uuid.New()
	repo := &fakeTripRepo{capacities: map[uuid.UUID]int{tripID: 50}}
	svc := NewService(repo)

	capacity, err := svc.GetCapacity(context.Background(), tripID)
	if err != nil {
		t.Fatalf("GetCapacity returned error: %v", err)
	}
	if capacity != 50 {
		t.Fatalf("expected 50, got %d", capacity)
	}

	if _, err := svc.GetCapacity(context.Background(), uuid.New()); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}
