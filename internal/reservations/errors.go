package reservations

import "errors"

// Service-level error kinds. Each reserve call maps to exactly one of these;
// callers can rely on the distinction between "pick another seat"
// (ErrSeatTaken) and "retry the same request" (ErrCodeExhausted).
var (
	// ErrInvalidRequest means an input was missing or malformed. The caller
	// must fix the request; it is never worth retrying as-is.
	ErrInvalidRequest = errors.New("invalid reservation request")

	// ErrTripNotFound means the trip identifier did not resolve.
	ErrTripNotFound = errors.New("trip not found")

	// ErrSeatOutOfRange means the seat number is outside [1, capacity].
	ErrSeatOutOfRange = errors.New("seat number out of range")

	// ErrSeatTaken means another reservation holds this (trip, seat) pair.
	// The caller should prompt for seat re-selection, not blind retry.
	ErrSeatTaken = errors.New("seat already taken")

	// ErrCodeExhausted means confirmation code generation collided with
	// existing codes on every attempt. The seat was NOT reserved; the whole
	// request may be retried safely.
	ErrCodeExhausted = errors.New("confirmation code generation exhausted")

	// ErrPersistence covers storage failures and timeouts where the outcome
	// is unknown. The caller must re-check availability before retrying.
	ErrPersistence = errors.New("persistence failure")
)

// Repository-level conflict kinds. The repository classifies unique
// constraint violations into these two axes; the service never inspects
// driver errors itself.
var (
	// ErrSeatConflict reports a violation of the (trip_id, seat_number)
	// unique constraint.
	ErrSeatConflict = errors.New("reservation conflicts on seat")

	// ErrCodeConflict reports a violation of the confirmation_code unique
	// constraint.
	ErrCodeConflict = errors.New("reservation conflicts on confirmation code")
)
