package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultConversationTitle = "New Chat"

// Conversation is one chat thread owned by a user.
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      string    `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	UserID    uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);default:'New Chat'" json:"title"`
	Model     string    `gorm:"type:varchar(100)" json:"model"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	if c.Title == "" {
		c.Title = DefaultConversationTitle
	}
	return nil
}
