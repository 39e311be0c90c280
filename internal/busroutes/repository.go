package busroutes

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, route *Route) error
	GetAll(ctx context.Context) ([]Route, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) GetAll(ctx context.Context) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&routes).Error
	return routes, err
}
