package repositories

import (
	"context"
	"errors"

	"festiva/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	LinkProfile(ctx context.Context, userID, profileID uuid.UUID) error
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) LinkProfile(ctx context.Context, userID, profileID uuid.UUID) error {
	return u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", userID).
		Update("profile_id", profileID).Error
}

func (u *userRepository) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	return u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", userID).
		Update("refresh_token", token).Error
}

// Delete removes the row for good. Used only by the registration
// compensating action, so the email becomes free again immediately.
func (u *userRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return u.db.WithContext(ctx).Unscoped().Delete(&db_models.User{}, "id = ?", userID).Error
}
