package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MESSAGE_ROLE_USER      = "user"
	MESSAGE_ROLE_ASSISTANT = "assistant"
	MESSAGE_ROLE_SYSTEM    = "system"
)

// Message is a single chat message inside a conversation. Messages are
// append-only; they are never updated after creation.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	UUID           string    `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	ConversationID uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"-"`
	Role           string    `gorm:"type:varchar(20);not null" json:"role"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Model          string    `gorm:"type:varchar(100)" json:"model,omitempty"`
	TokensUsed     int       `gorm:"default:0" json:"tokens_used"`
	Cost           float64   `gorm:"type:decimal(10,6);default:0.000000" json:"cost"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}
	return nil
}
