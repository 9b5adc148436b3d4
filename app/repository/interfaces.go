package repository

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// ConversationRepository defines the interface for chat conversation operations
type ConversationRepository interface {
	Create(conversation *models.Conversation) error
	GetByUUID(uuid string) (*models.Conversation, error)
	GetByUserID(userID uint) ([]models.Conversation, error)
	UpdateTitle(id uint, title string) error
	Touch(id uint) error
	Delete(id uint) error
}

// MessageRepository defines the interface for chat message operations.
// Messages are append-only; there is no update or delete.
type MessageRepository interface {
	Create(message *models.Message) error
	GetByConversationID(conversationID uint) ([]models.Message, error)
	CountByConversationID(conversationID uint) (int64, error)
}

// QuotaRepository is the durable usage store: one row per user and provider
// holding the daily counter and its last reset timestamp.
type QuotaRepository interface {
	GetByUserID(userID uint) ([]models.ApiQuota, error)
	Upsert(quota *models.ApiQuota) error
	// IncrementUsed bumps used_today by one at the database level, so two
	// concurrent requests for the same user/provider can never lose an
	// increment to a read-modify-write race.
	IncrementUsed(userID uint, provider string) error
}

// GeneratedImageRepository defines the interface for AI-generated image records
type GeneratedImageRepository interface {
	Create(image *models.GeneratedImage) error
	GetByUUID(uuid string) (*models.GeneratedImage, error)
	GetByUserID(userID uint) ([]models.GeneratedImage, error)
	Delete(id uint) error
}

// WpProjectRepository defines the interface for WordPress analysis projects
type WpProjectRepository interface {
	Create(project *models.WpProject) error
	GetByUUID(uuid string) (*models.WpProject, error)
	GetByUserID(userID uint) ([]models.WpProject, error)
	CreateIssue(issue *models.WpIssue) error
	GetIssuesByProjectID(projectID uint) ([]models.WpIssue, error)
}

// ElementorTemplateRepository defines the interface for page-builder templates
type ElementorTemplateRepository interface {
	Create(template *models.ElementorTemplate) error
	GetByUUID(uuid string) (*models.ElementorTemplate, error)
	GetByUserID(userID uint) ([]models.ElementorTemplate, error)
	Delete(id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User              UserRepository
	Conversation      ConversationRepository
	Message           MessageRepository
	Quota             QuotaRepository
	GeneratedImage    GeneratedImageRepository
	WpProject         WpProjectRepository
	ElementorTemplate ElementorTemplateRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:              NewUserRepository(db),
		Conversation:      NewConversationRepository(db),
		Message:           NewMessageRepository(db),
		Quota:             NewQuotaRepository(db),
		GeneratedImage:    NewGeneratedImageRepository(db),
		WpProject:         NewWpProjectRepository(db),
		ElementorTemplate: NewElementorTemplateRepository(db),
	}
}
