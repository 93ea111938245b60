package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/internal/repositories"
	"festiva/pkg/utils"

	"github.com/google/uuid"
)

type MediaServiceInterface interface {
	ListStorybooks(ctx context.Context, customerID string) ([]db_models.Storybook, error)
	CreateStorybook(ctx context.Context, customerID string, request request_models.CreateStorybookRequest) (*db_models.Storybook, error)
	ListInvitations(ctx context.Context, customerID string) ([]db_models.Invitation, error)
	CreateInvitation(ctx context.Context, customerID string, request request_models.CreateInvitationRequest) (*db_models.Invitation, error)
	ListPosts(ctx context.Context, customerID string) ([]db_models.SocialMediaPost, error)
	CreatePost(ctx context.Context, customerID string, request request_models.CreatePostRequest) (*db_models.SocialMediaPost, error)
}

type MediaService struct {
	mediaRepo    repositories.MediaRepository
	customerRepo repositories.CustomerRepository
	generator    utils.ContentGeneratorInterface
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	customerRepo repositories.CustomerRepository,
	generator utils.ContentGeneratorInterface,
) MediaServiceInterface {
	return &MediaService{
		mediaRepo:    mediaRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

func parseCustomerID(customerID string) (*uuid.UUID, error) {
	if customerID == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(customerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return &parsed, nil
}

func (m *MediaService) ListStorybooks(ctx context.Context, customerID string) ([]db_models.Storybook, error) {
	cid, err := parseCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	books, err := m.mediaRepo.ListStorybooks(ctx, cid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return books, nil
}

func (m *MediaService) CreateStorybook(ctx context.Context, customerID string, request request_models.CreateStorybookRequest) (*db_models.Storybook, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	tone := request.Tone
	if tone == "" {
		tone = "romantic"
	}

	story, err := m.generator.GenerateStorybook(ctx, utils.StorybookDetails{
		EventName:   request.EventDetails.EventName,
		Date:        request.EventDetails.Date,
		Description: request.EventDetails.Description,
		Anecdotes:   request.EventDetails.Anecdotes,
	}, tone)
	if err != nil {
		return nil, err
	}

	metadata, _ := json.Marshal(request.EventDetails)

	storybook := &db_models.Storybook{
		StorybookID: utils.GenerateStorybookID(),
		CustomerID:  cid,
		Images:      request.Images,
		Story:       story,
		Tone:        tone,
		EventName:   request.EventDetails.EventName,
		Title:       fmt.Sprintf("%s - Memories", request.EventDetails.EventName),
		Metadata:    metadata,
	}

	if err := m.mediaRepo.InsertStorybook(ctx, storybook); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := m.customerRepo.AppendStorybookRef(ctx, cid, storybook.ID.String()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return storybook, nil
}

func (m *MediaService) ListInvitations(ctx context.Context, customerID string) ([]db_models.Invitation, error) {
	cid, err := parseCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	invitations, err := m.mediaRepo.ListInvitations(ctx, cid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return invitations, nil
}

func (m *MediaService) CreateInvitation(ctx context.Context, customerID string, request request_models.CreateInvitationRequest) (*db_models.Invitation, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	eventID, err := uuid.Parse(request.EventID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	inviteID := utils.GenerateInviteID()

	invitation := &db_models.Invitation{
		InviteID:            inviteID,
		EventRef:            eventID,
		CustomerID:          cid,
		GuestID:             request.GuestID,
		UserEmail:           request.UserEmail,
		InviteURL:           fmt.Sprintf("%s/invitation/%s", os.Getenv("FRONTEND_URL"), inviteID),
		Template:            request.Template,
		PersonalizedMessage: request.PersonalizedMessage,
		SentAt:              time.Now(),
		Status:              "sent",
	}

	if err := m.mediaRepo.InsertInvitation(ctx, invitation); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := m.customerRepo.AppendInvitationRef(ctx, cid, invitation.ID.String()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return invitation, nil
}

func (m *MediaService) ListPosts(ctx context.Context, customerID string) ([]db_models.SocialMediaPost, error) {
	cid, err := parseCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	posts, err := m.mediaRepo.ListPosts(ctx, cid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return posts, nil
}

func (m *MediaService) CreatePost(ctx context.Context, customerID string, request request_models.CreatePostRequest) (*db_models.SocialMediaPost, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	tone := request.Tone
	if tone == "" {
		tone = "fun"
	}

	content, err := m.generator.GenerateSocialMediaContent(ctx, request.EventName, request.Description, tone)
	if err != nil {
		return nil, err
	}

	platforms := request.Platforms
	if len(platforms) == 0 {
		platforms = []string{"instagram", "facebook"}
	}

	post := &db_models.SocialMediaPost{
		PostID:       utils.GeneratePostID(),
		CustomerID:   cid,
		PostImageURL: request.PostImageURL,
		Caption:      content.Caption,
		Hashtags:     content.Hashtags,
		Platforms:    platforms,
		Status:       "draft",
	}

	if err := m.mediaRepo.InsertPost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return post, nil
}
