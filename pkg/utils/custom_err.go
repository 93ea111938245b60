package utils

import (
	"errors"
	"strings"
)

var (
	ErrEmailAlreadyExists = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden: insufficient permissions")
	ErrProvisionFailed    = errors.New("failed to create profile")
	ErrUserNotFound       = errors.New("user not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrGiftNotFound       = errors.New("gift not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOutOfStock         = errors.New("gift is out of stock")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationErrors collects every violated rule from a single validation
// pass so the caller sees all of them at once.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, ", ")
}
