package fleet

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrPlateExists = errors.New("plate number already exists")

type Repository interface {
	Create(ctx context.Context, bus *Bus) error
	GetAll(ctx context.Context) ([]Bus, error)
	GetByID(ctx context.Context, id string) (*Bus, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, bus *Bus) error {
	err := r.db.WithContext(ctx).Create(bus).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrPlateExists
		}
		return err
	}
	return nil
}

func (r *repository) GetAll(ctx context.Context) ([]Bus, error) {
	var buses []Bus
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&buses).Error
	return buses, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Bus, error) {
	var bus Bus
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bus).Error
	if err != nil {
		return nil, err
	}
	return &bus, nil
}
