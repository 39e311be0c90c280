package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type Repository interface {
	// InsertIfAbsent atomically inserts a reservation. The database unique
	// constraints are the only arbiter between concurrent callers; there is
	// no application-side existence check. Returns ErrSeatConflict or
	// ErrCodeConflict for the two constraint axes, any other error verbatim.
	InsertIfAbsent(ctx context.Context, reservation *Reservation) error

	// ListActiveSeats returns the seat numbers of all ACTIVE reservations
	// for a trip in ascending order.
	ListActiveSeats(ctx context.Context, tripID uuid.UUID) ([]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertIfAbsent(ctx context.Context, reservation *Reservation) error {
	err := r.db.WithContext(ctx).Create(reservation).Error
	if err != nil {
		return classifyInsertError(err)
	}
	return nil
}

func (r *repository) ListActiveSeats(ctx context.Context, tripID uuid.UUID) ([]int, error) {
	var seats []int
	err := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("trip_id = ?", tripID).
		Where("status = ?", StatusActive).
		Order("seat_number ASC").
		Pluck("seat_number", &seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

// classifyInsertError maps a unique violation to the constraint axis it hit,
// using the structured constraint name from the driver rather than parsing
// error message text.
func classifyInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "confirmation_code"):
		return ErrCodeConflict
	case strings.Contains(pgErr.ConstraintName, "trip_seat"):
		return ErrSeatConflict
	default:
		return fmt.Errorf("unexpected unique violation on %q: %w", pgErr.ConstraintName, err)
	}
}
