package repository

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// elementorTemplateRepository implements the ElementorTemplateRepository interface
type elementorTemplateRepository struct {
	db *gorm.DB
}

// NewElementorTemplateRepository creates a new template repository instance
func NewElementorTemplateRepository(db *gorm.DB) ElementorTemplateRepository {
	return &elementorTemplateRepository{db: db}
}

// Create stores a generated page-builder template
func (r *elementorTemplateRepository) Create(template *models.ElementorTemplate) error {
	return r.db.Create(template).Error
}

// GetByUUID retrieves a template by its public UUID
func (r *elementorTemplateRepository) GetByUUID(uuid string) (*models.ElementorTemplate, error) {
	var template models.ElementorTemplate
	err := r.db.Where("uuid = ?", uuid).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByUserID retrieves all templates for a user, newest first
func (r *elementorTemplateRepository) GetByUserID(userID uint) ([]models.ElementorTemplate, error) {
	var templates []models.ElementorTemplate
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&templates).Error
	return templates, err
}

// Delete removes a template record
func (r *elementorTemplateRepository) Delete(id uint) error {
	return r.db.Delete(&models.ElementorTemplate{}, id).Error
}
