package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// VendorEmbedding stores a vector over the vendor's profile text, used by
// the recommendation similarity search.
type VendorEmbedding struct {
	BaseModel
	VendorID  uuid.UUID       `gorm:"type:uuid;index" json:"vendorId"`
	Content   string          `json:"content"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
}
