package repository

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// messageRepository implements the MessageRepository interface
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a new message to its conversation
func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByConversationID returns the full history of a conversation in send order
func (r *messageRepository) GetByConversationID(conversationID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").Find(&messages).Error
	return messages, err
}

// CountByConversationID returns how many messages a conversation holds
func (r *messageRepository) CountByConversationID(conversationID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("conversation_id = ?", conversationID).Count(&count).Error
	return count, err
}
