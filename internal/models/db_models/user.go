package db_models

import "github.com/google/uuid"

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// User is the authentication record. RefreshToken holds the single active
// session token; storing a new one invalidates the previous session.
// ProfileID links to the role-specific profile created with the user.
type User struct {
	BaseModel
	Name         string     `json:"name"`
	Email        string     `gorm:"unique" json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	RefreshToken *string    `json:"-"`
	ProfileID    *uuid.UUID `gorm:"type:uuid" json:"profileId"`
}
