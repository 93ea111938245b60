package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	BaseModel
	InviteID            string    `gorm:"unique" json:"inviteId"`
	EventRef            uuid.UUID `gorm:"type:uuid" json:"eventId"`
	CustomerID          uuid.UUID `gorm:"type:uuid" json:"cid"`
	GuestID             string    `json:"guestId"`
	UserEmail           string    `json:"userEmail"`
	InviteURL           string    `json:"inviteUrl"`
	Template            string    `json:"template"`
	PersonalizedMessage string    `json:"personalizedMessage"`
	SentAt              time.Time `json:"sentAt"`
	Status              string    `gorm:"default:sent" json:"status"`
}
