package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return NewRepository(gdb), mock
}

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           pgUniqueViolation,
		ConstraintName: constraint,
	}
}

func TestInsertIfAbsent(t *testing.T) {
	repo, mock := newTestRepository(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	reservation := &Reservation{
		TripID:           uuid.New(),
		SeatNumber:       4,
		PassengerName:    "Asha Patel",
		ContactPhone:     "+91-9876543210",
		ConfirmationCode: "BK-20250314-482910",
		Status:           StatusActive,
	}

	if err := repo.InsertIfAbsent(context.Background(), reservation); err != nil {
		t.Fatalf("InsertIfAbsent returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertIfAbsentSeatConflict(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reservations"`).
		WillReturnError(uniqueViolation("uniq_reservation_trip_seat"))
	mock.ExpectRollback()

	err := repo.InsertIfAbsent(context.Background(), &Reservation{
		TripID:           uuid.New(),
		SeatNumber:       4,
		PassengerName:    "Asha Patel",
		ContactPhone:     "+91-9876543210",
		ConfirmationCode: "BK-20250314-482910",
		Status:           StatusActive,
	})
	if !errors.Is(err, ErrSeatConflict) {
		t.Fatalf("expected ErrSeatConflict, got %v", err)
	}
}

func TestInsertIfAbsentCodeConflict(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reservations"`).
		WillReturnError(uniqueViolation("uniq_reservation_confirmation_code"))
	mock.ExpectRollback()

	err := repo.InsertIfAbsent(context.Background(), &Reservation{
		TripID:           uuid.New(),
		SeatNumber:       4,
		PassengerName:    "Asha Patel",
		ContactPhone:     "+91-9876543210",
		ConfirmationCode: "BK-20250314-482910",
		Status:           StatusActive,
	})
	if !errors.Is(err, ErrCodeConflict) {
		t.Fatalf("expected ErrCodeConflict, got %v", err)
	}
}

func TestListActiveSeats(t *testing.T) {
	repo, mock := newTestRepository(t)
	tripID := uuid.New()

	rows := sqlmock.NewRows([]string{"seat_number"}).AddRow(2).AddRow(5).AddRow(9)
	mock.ExpectQuery(`SELECT "seat_number" FROM "reservations"`).
		WillReturnRows(rows)

	seats, err := repo.ListActiveSeats(context.Background(), tripID)
	if err != nil {
		t.Fatalf("ListActiveSeats returned error: %v", err)
	}
	want := []int{2, 5, 9}
	if len(seats) != len(want) {
		t.Fatalf("expected %v, got %v", want, seats)
	}
	for i := range want {
		if seats[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seats)
		}
	}
}

func TestClassifyInsertError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"seat constraint", uniqueViolation("uniq_reservation_trip_seat"), ErrSeatConflict},
		{"code constraint", uniqueViolation("uniq_reservation_confirmation_code"), ErrCodeConflict},
		{"other error", errors.New("connection reset"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyInsertError(tc.in)
			if tc.want != nil {
				if !errors.Is(got, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
				return
			}
			if got != tc.in {
				t.Fatalf("expected error passed through verbatim, got %v", got)
			}
		})
	}
}

// A unique violation on a constraint the classifier does not know about
// must not be reported as either conflict kind.
func TestClassifyInsertErrorUnknownConstraint(t *testing.T) {
	got := classifyInsertError(uniqueViolation("uniq_something_else"))
	if errors.Is(got, ErrSeatConflict) || errors.Is(got, ErrCodeConflict) {
		t.Fatalf("unknown constraint must not map to a conflict kind, got %v", got)
	}
	if got == nil {
		t.Fatal("expected an error for unknown unique violation")
	}
}
