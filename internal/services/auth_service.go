package services

import (
	"context"
	"log"

	"festiva/internal/models/db_models"
	"festiva/internal/models/response_models"
	"festiva/internal/repositories"
	"festiva/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*response_models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenPairResponse, error)
	Logout(ctx context.Context, userID string) error
	IssueTokenPair(ctx context.Context, user *db_models.User) (string, string, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
	}
}

// IssueTokenPair mints both tokens and persists the refresh token on the
// user row. Only one refresh token is ever stored, so issuing a new pair
// invalidates the previous session.
func (a *AuthService) IssueTokenPair(ctx context.Context, user *db_models.User) (string, string, error) {
	accessToken, err := utils.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.CreateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}

	if err := a.userRepo.StoreRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return "", "", utils.ErrDatabaseError
	}

	return accessToken, refreshToken, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the same error so callers cannot probe for accounts.
func (a *AuthService) Login(ctx context.Context, email, password string) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := a.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &response_models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: response_models.UserSummary{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// Refresh rotates the token pair. The presented token must verify AND
// match the stored one; a superseded token is rejected the same way as a
// forged one.
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenPairResponse, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, utils.ErrInvalidToken
	}

	newAccess, newRefresh, err := a.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &response_models.TokenPairResponse{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
	}, nil
}

// Logout clears the stored refresh token. Logging out an unknown user is
// not an error.
func (a *AuthService) Logout(ctx context.Context, userID string) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		log.Printf("Logout requested for unknown user %s", userID)
		return nil
	}

	if err := a.userRepo.StoreRefreshToken(ctx, user.ID, nil); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
