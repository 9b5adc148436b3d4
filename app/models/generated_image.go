package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedImage is one AI-generated image owned by a user. The image data
// itself is stored as a URL (or data URL) rather than a file on disk.
type GeneratedImage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	UserID    uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	ImageURL  string    `gorm:"type:longtext;not null" json:"image_url"`
	Model     string    `gorm:"type:varchar(100);not null" json:"model"`
	Size      string    `gorm:"type:varchar(20)" json:"size,omitempty"`
	Style     string    `gorm:"type:varchar(50)" json:"style,omitempty"`
	Cost      float64   `gorm:"type:decimal(10,4);default:0.0000" json:"cost"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (g *GeneratedImage) BeforeCreate(tx *gorm.DB) error {
	if g.UUID == "" {
		g.UUID = uuid.New().String()
	}
	return nil
}
