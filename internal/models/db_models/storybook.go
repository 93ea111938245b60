package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Storybook struct {
	BaseModel
	StorybookID string         `gorm:"unique" json:"storybookId"`
	CustomerID  uuid.UUID      `gorm:"type:uuid" json:"cid"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Story       string         `json:"story"`
	Tone        string         `gorm:"default:romantic" json:"tone"`
	EventName   string         `json:"eventName"`
	Title       string         `json:"title"`
	Metadata    datatypes.JSON `json:"metadata"`
}
