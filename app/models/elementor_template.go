package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElementorTemplate is a generated page-builder template stored as JSON.
type ElementorTemplate struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	UUID            string    `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	UserID          uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	TemplateJSON    string    `gorm:"type:json;not null" json:"template_json"`
	PreviewImageURL string    `gorm:"type:varchar(255)" json:"preview_image_url,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (t *ElementorTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == "" {
		t.UUID = uuid.New().String()
	}
	return nil
}
