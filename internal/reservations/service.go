package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"busline/pkg/logger"
)

// codeRetryBudget bounds confirmation code regeneration within a single
// reserve call. Exhausting it leaves the seat unreserved.
const codeRetryBudget = 3

// CapacityProvider resolves a trip to its total seat count (interface
// declared here to avoid depending on the trips package wiring).
// Implementations return ErrTripNotFound for unknown trips.
type CapacityProvider interface {
	GetCapacity(ctx context.Context, tripID uuid.UUID) (int, error)
}

// EventPublisher publishes reservation lifecycle events. Publishing is
// best-effort; a reserve call never fails because the broker is down.
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, event *ConfirmedEvent) error
}

// ConfirmedEvent describes a successfully committed reservation.
type ConfirmedEvent struct {
	ReservationID    string `json:"reservation_id"`
	TripID           string `json:"trip_id"`
	SeatNumber       int    `json:"seat_number"`
	ConfirmationCode string `json:"confirmation_code"`
	PassengerName    string `json:"passenger_name"`
}

// Service interface defines the contract for the reservation core
type Service interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReservationResponse, error)
	ListTaken(ctx context.Context, tripID string) (*SeatMapResponse, error)
}

// service implements the Service interface
type service struct {
	repo      Repository
	capacity  CapacityProvider
	codes     CodeGenerator
	publisher EventPublisher
	log       *logger.Logger
}

// NewService creates a new reservation service instance. publisher may be
// nil when no broker is configured.
func NewService(repo Repository, capacity CapacityProvider, codes CodeGenerator, publisher EventPublisher) Service {
	return &service{
		repo:      repo,
		capacity:  capacity,
		codes:     codes,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

// Reserve validates the request and commits the reservation through a single
// atomic insert. There is deliberately no "is the seat free" pre-check: two
// concurrent requests for the same seat are arbitrated by the database
// unique constraint alone, which stays correct across server instances.
func (s *service) Reserve(ctx context.Context, req ReserveRequest) (*ReservationResponse, error) {
	passengerName := strings.TrimSpace(req.PassengerName)
	contactPhone := strings.TrimSpace(req.ContactPhone)

	if strings.TrimSpace(req.TripID) == "" || passengerName == "" || contactPhone == "" {
		return nil, ErrInvalidRequest
	}

	// An identifier that cannot be parsed can never resolve to a trip.
	tripID, err := uuid.Parse(strings.TrimSpace(req.TripID))
	if err != nil {
		return nil, ErrTripNotFound
	}

	capacity, err := s.capacity.GetCapacity(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		s.log.ErrorWithContext(ctx, "capacity lookup failed", err, map[string]interface{}{
			"trip_id": tripID.String(),
		})
		return nil, fmt.Errorf("%w: capacity lookup: %v", ErrPersistence, err)
	}

	if req.SeatNumber < 1 || req.SeatNumber > capacity {
		return nil, ErrSeatOutOfRange
	}

	for attempt := 0; attempt < codeRetryBudget; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("%w: code generation: %v", ErrPersistence, err)
		}

		reservation := &Reservation{
			TripID:           tripID,
			SeatNumber:       req.SeatNumber,
			PassengerName:    passengerName,
			ContactPhone:     contactPhone,
			ConfirmationCode: code,
			Status:           StatusActive,
		}

		err = s.repo.InsertIfAbsent(ctx, reservation)
		switch {
		case err == nil:
			s.log.LogReservationConfirmed(ctx, reservation.ID.String(), tripID.String(), req.SeatNumber)
			s.publishConfirmed(ctx, reservation)
			return &ReservationResponse{
				ReservationID:    reservation.ID.String(),
				ConfirmationCode: reservation.ConfirmationCode,
				TripID:           tripID.String(),
				SeatNumber:       reservation.SeatNumber,
				CreatedAt:        reservation.CreatedAt,
			}, nil

		case errors.Is(err, ErrSeatConflict):
			s.log.LogSeatConflict(ctx, tripID.String(), req.SeatNumber)
			return nil, ErrSeatTaken

		case errors.Is(err, ErrCodeConflict):
			// Rare: regenerate and try again. The seat is still unclaimed.
			continue

		default:
			// Unknown outcome (including timeouts): surface it, never retry
			// here since a retry could double-submit the seat request.
			s.log.ErrorWithContext(ctx, "reservation insert failed", err, map[string]interface{}{
				"trip_id":     tripID.String(),
				"seat_number": req.SeatNumber,
			})
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	return nil, ErrCodeExhausted
}

// ListTaken recomputes the seat map from persisted reservations on every
// call. Freshness matters more than speed here: a cached snapshot would
// invite double-booking attempts.
func (s *service) ListTaken(ctx context.Context, tripID string) (*SeatMapResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(tripID))
	if err != nil {
		return nil, ErrTripNotFound
	}

	capacity, err := s.capacity.GetCapacity(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("%w: capacity lookup: %v", ErrPersistence, err)
	}

	seats, err := s.repo.ListActiveSeats(ctx, id)
	if err != nil {
		s.log.ErrorWithContext(ctx, "seat listing failed", err, map[string]interface{}{
			"trip_id": id.String(),
		})
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if seats == nil {
		seats = []int{}
	}

	return &SeatMapResponse{
		TakenSeats: seats,
		TotalSeats: capacity,
	}, nil
}

func (s *service) publishConfirmed(ctx context.Context, reservation *Reservation) {
	if s.publisher == nil {
		return
	}

	event := &ConfirmedEvent{
		ReservationID:    reservation.ID.String(),
		TripID:           reservation.TripID.String(),
		SeatNumber:       reservation.SeatNumber,
		ConfirmationCode: reservation.ConfirmationCode,
		PassengerName:    reservation.PassengerName,
	}

	if err := s.publisher.PublishReservationConfirmed(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish reservation event", err, map[string]interface{}{
			"reservation_id": event.ReservationID,
		})
	}
}
