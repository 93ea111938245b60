package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	EventStatusPlanning  = "planning"
	EventStatusConfirmed = "confirmed"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type TimelineItem struct {
	Milestone string    `json:"milestone"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// Event belongs to exactly one customer. VendorRefs is a set: adding a
// vendor that is already present is a no-op.
type Event struct {
	BaseModel
	Date       time.Time      `json:"date"`
	CustomerID uuid.UUID      `gorm:"type:uuid" json:"cid"`
	EventID    string         `gorm:"unique" json:"eventId"`
	EventName  string         `json:"eventName"`
	EventType  string         `json:"eventType"`
	Venue      string         `json:"venue"`
	Budget     *float64       `json:"budget"`
	Status     string         `gorm:"default:planning" json:"status"`
	VendorRefs pq.StringArray `gorm:"type:text[]" json:"vendors"`
	Timeline   []TimelineItem `gorm:"serializer:json" json:"timeline"`
	Metadata   datatypes.JSON `json:"metadata"`
}

func (e *Event) HasVendor(vendorID string) bool {
	for _, id := range e.VendorRefs {
		if id == vendorID {
			return true
		}
	}
	return false
}
