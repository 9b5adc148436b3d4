package repository

import (
	"time"

	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// conversationRepository implements the ConversationRepository interface
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository instance
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// Create creates a new conversation in the database
func (r *conversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// GetByUUID retrieves a conversation by its public UUID
func (r *conversationRepository) GetByUUID(uuid string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Where("uuid = ?", uuid).First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetByUserID retrieves all conversations for a user, most recently updated first
func (r *conversationRepository) GetByUserID(userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&conversations).Error
	return conversations, err
}

// UpdateTitle sets a new title for a conversation
func (r *conversationRepository) UpdateTitle(id uint, title string) error {
	return r.db.Model(&models.Conversation{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "updated_at": time.Now()}).Error
}

// Touch bumps the conversation's updated_at so it sorts to the top of the list
func (r *conversationRepository) Touch(id uint) error {
	return r.db.Model(&models.Conversation{}).Where("id = ?", id).
		UpdateColumn("updated_at", time.Now()).Error
}

// Delete removes a conversation; its messages cascade at the database level
func (r *conversationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Conversation{}, id).Error
}
