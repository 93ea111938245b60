package repositories

import (
	"context"

	"festiva/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaRepository interface {
	InsertStorybook(ctx context.Context, storybook *db_models.Storybook) error
	ListStorybooks(ctx context.Context, customerID *uuid.UUID) ([]db_models.Storybook, error)
	InsertInvitation(ctx context.Context, invitation *db_models.Invitation) error
	ListInvitations(ctx context.Context, customerID *uuid.UUID) ([]db_models.Invitation, error)
	InsertPost(ctx context.Context, post *db_models.SocialMediaPost) error
	ListPosts(ctx context.Context, customerID *uuid.UUID) ([]db_models.SocialMediaPost, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{
		db: db,
	}
}

func (m *mediaRepository) InsertStorybook(ctx context.Context, storybook *db_models.Storybook) error {
	return m.db.WithContext(ctx).Create(storybook).Error
}

func (m *mediaRepository) ListStorybooks(ctx context.Context, customerID *uuid.UUID) ([]db_models.Storybook, error) {
	q := m.db.WithContext(ctx)
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var books []db_models.Storybook
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (m *mediaRepository) InsertInvitation(ctx context.Context, invitation *db_models.Invitation) error {
	return m.db.WithContext(ctx).Create(invitation).Error
}

func (m *mediaRepository) ListInvitations(ctx context.Context, customerID *uuid.UUID) ([]db_models.Invitation, error) {
	q := m.db.WithContext(ctx)
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var invitations []db_models.Invitation
	if err := q.Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

func (m *mediaRepository) InsertPost(ctx context.Context, post *db_models.SocialMediaPost) error {
	return m.db.WithContext(ctx).Create(post).Error
}

func (m *mediaRepository) ListPosts(ctx context.Context, customerID *uuid.UUID) ([]db_models.SocialMediaPost, error) {
	q := m.db.WithContext(ctx)
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var posts []db_models.SocialMediaPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
