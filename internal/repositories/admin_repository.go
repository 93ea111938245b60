package repositories

import (
	"context"

	"festiva/internal/models/db_models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *db_models.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (a *adminRepository) Insert(ctx context.Context, admin *db_models.Admin) error {
	return a.db.WithContext(ctx).Create(admin).Error
}
