package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SocialMediaPost struct {
	BaseModel
	PostID       string         `gorm:"unique" json:"postId"`
	CustomerID   uuid.UUID      `gorm:"type:uuid" json:"cid"`
	PostImageURL string         `json:"postImageUrl"`
	Caption      string         `json:"caption"`
	Hashtags     pq.StringArray `gorm:"type:text[]" json:"hashtags"`
	Platforms    pq.StringArray `gorm:"type:text[]" json:"platforms"`
	Status       string         `gorm:"default:draft" json:"status"`
}
