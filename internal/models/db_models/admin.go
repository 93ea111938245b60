package db_models

import "github.com/google/uuid"

type Admin struct {
	BaseModel
	Name    string    `json:"name"`
	Email   string    `gorm:"unique" json:"email"`
	UserRef uuid.UUID `gorm:"type:uuid" json:"userRef"`
}
