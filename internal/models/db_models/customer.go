package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Customer profile. The ref columns mirror the document design: the profile
// owns its events/invitations/storybooks by reference, not containment.
type Customer struct {
	BaseModel
	Name            string         `json:"name"`
	Email           string         `gorm:"unique" json:"email"`
	Phone           string         `json:"phone"`
	TotalBudget     float64        `json:"totalBudget"`
	RemainingBudget float64        `json:"remainingBudget"`
	ProfileLink     string         `json:"profileLink"`
	EventRefs       pq.StringArray `gorm:"type:text[]" json:"events"`
	InvitationRefs  pq.StringArray `gorm:"type:text[]" json:"invitations"`
	StorybookRefs   pq.StringArray `gorm:"type:text[]" json:"storybook"`
	UserRef         uuid.UUID      `gorm:"type:uuid" json:"userRef"`
}
