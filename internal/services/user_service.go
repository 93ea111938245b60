package services

import (
	"context"
	"fmt"
	"log"

	"festiva/internal/models/db_models"
	"festiva/internal/models/request_models"
	"festiva/internal/models/response_models"
	"festiva/internal/repositories"
	"festiva/pkg/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, request request_models.SignupRequest) (*response_models.AuthResponse, error)
}

type UserService struct {
	userRepo     repositories.UserRepository
	customerRepo repositories.CustomerRepository
	vendorRepo   repositories.VendorRepository
	adminRepo    repositories.AdminRepository
	authService  AuthServiceInterface
}

func NewUserService(
	userRepo repositories.UserRepository,
	customerRepo repositories.CustomerRepository,
	vendorRepo repositories.VendorRepository,
	adminRepo repositories.AdminRepository,
	authService AuthServiceInterface,
) UserServiceInterface {
	return &UserService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		adminRepo:    adminRepo,
		authService:  authService,
	}
}

// Register creates the user and its role-specific profile as a unit: if
// the profile cannot be created or linked, the user row is deleted again
// so no identity ever exists without a profile. On success the caller is
// logged in immediately.
func (u *UserService) Register(ctx context.Context, request request_models.SignupRequest) (*response_models.AuthResponse, error) {
	if err := u.validate(request); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         request.Role,
	}
	if err := u.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := u.provisionProfile(ctx, user, request); err != nil {
		// Compensating action: a user without a profile must not survive.
		if deleteErr := u.userRepo.Delete(ctx, user.ID); deleteErr != nil {
			log.Printf("Failed to delete user %s after provisioning error: %v (original error: %v)", user.ID, deleteErr, err)
			return nil, fmt.Errorf("%w: %v (cleanup also failed: %v)", utils.ErrProvisionFailed, err, deleteErr)
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrProvisionFailed, err)
	}

	accessToken, refreshToken, err := u.authService.IssueTokenPair(ctx, user)
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

func (u *UserService) validate(request request_models.SignupRequest) error {
	var errs utils.ValidationErrors

	if fieldErr := utils.ValidateSignupInput(request.Email, request.Password, request.Phone); fieldErr != nil {
		errs = append(errs, fieldErr.(utils.ValidationErrors)...)
	}
	if !db_models.IsValidRole(request.Role) {
		errs = append(errs, "Role must be one of customer, vendor, admin")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// provisionProfile creates the role-matched profile with zeroed numeric
// fields and empty collections, then links both directions.
func (u *UserService) provisionProfile(ctx context.Context, user *db_models.User, request request_models.SignupRequest) error {
	switch user.Role {
	case db_models.RoleCustomer:
		customer := &db_models.Customer{
			Name:            request.Name,
			Email:           request.Email,
			Phone:           request.Phone,
			TotalBudget:     0,
			RemainingBudget: 0,
			EventRefs:       []string{},
			InvitationRefs:  []string{},
			StorybookRefs:   []string{},
			UserRef:         user.ID,
		}
		if err := u.customerRepo.Insert(ctx, customer); err != nil {
			return err
		}
		user.ProfileID = &customer.ID
	case db_models.RoleVendor:
		userRef := user.ID
		vendor := &db_models.Vendor{
			Name:         request.Name,
			Email:        request.Email,
			Phone:        request.Phone,
			Category:     request.Category,
			Ratings:      0,
			Reviews:      []db_models.Review{},
			Availability: true,
			Portfolio:    []string{},
			Services:     []string{},
			UserRef:      &userRef,
		}
		if err := u.vendorRepo.Insert(ctx, vendor); err != nil {
			return err
		}
		user.ProfileID = &vendor.ID
	case db_models.RoleAdmin:
		admin := &db_models.Admin{
			Name:    request.Name,
			Email:   request.Email,
			UserRef: user.ID,
		}
		if err := u.adminRepo.Insert(ctx, admin); err != nil {
			return err
		}
		user.ProfileID = &admin.ID
	}

	return u.userRepo.LinkProfile(ctx, user.ID, *user.ProfileID)
}
