package repository

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// generatedImageRepository implements the GeneratedImageRepository interface
type generatedImageRepository struct {
	db *gorm.DB
}

// NewGeneratedImageRepository creates a new generated image repository instance
func NewGeneratedImageRepository(db *gorm.DB) GeneratedImageRepository {
	return &generatedImageRepository{db: db}
}

// Create stores a newly generated image record
func (r *generatedImageRepository) Create(image *models.GeneratedImage) error {
	return r.db.Create(image).Error
}

// GetByUUID retrieves a generated image by its public UUID
func (r *generatedImageRepository) GetByUUID(uuid string) (*models.GeneratedImage, error) {
	var image models.GeneratedImage
	err := r.db.Where("uuid = ?", uuid).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByUserID retrieves all generated images for a user, newest first
func (r *generatedImageRepository) GetByUserID(userID uint) ([]models.GeneratedImage, error) {
	var images []models.GeneratedImage
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&images).Error
	return images, err
}

// Delete removes a generated image record
func (r *generatedImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.GeneratedImage{}, id).Error
}
