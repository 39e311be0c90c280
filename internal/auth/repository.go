package auth

import (
	"context"
	"errors"

	"busline/internal/admins"

	"gorm.io/gorm"
)

type Repository interface {
	CreateAdmin(ctx context.Context, admin *admins.Admin) error
	GetAdminByUsername(ctx context.Context, username string) (*admins.Admin, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateAdmin(ctx context.Context, admin *admins.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}
	return nil
}

func (r *repository) GetAdminByUsername(ctx context.Context, username string) (*admins.Admin, error) {
	var admin admins.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&admins.Admin{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
