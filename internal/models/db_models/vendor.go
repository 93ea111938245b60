package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Review struct {
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	CustomerName string    `json:"customerName"`
	Date         time.Time `json:"date"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Vendor profile and catalog entry. Ratings is always the arithmetic mean
// over Reviews, recomputed in full on every review append.
type Vendor struct {
	BaseModel
	Name         string         `json:"name"`
	Email        string         `gorm:"unique" json:"email"`
	Phone        string         `json:"phone"`
	Category     string         `json:"category"`
	Ratings      float64        `json:"ratings"`
	Reviews      []Review       `gorm:"serializer:json" json:"reviews"`
	Location     string         `json:"location"`
	PriceRange   PriceRange     `gorm:"embedded;embeddedPrefix:price_" json:"priceRange"`
	Availability bool           `gorm:"default:true" json:"availability"`
	Portfolio    pq.StringArray `gorm:"type:text[]" json:"portfolio"`
	Services     pq.StringArray `gorm:"type:text[]" json:"services"`
	OtherData    datatypes.JSON `json:"otherData"`
	UserRef      *uuid.UUID     `gorm:"type:uuid" json:"userRef"`
}
