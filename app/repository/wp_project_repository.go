package repository

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// wpProjectRepository implements the WpProjectRepository interface
type wpProjectRepository struct {
	db *gorm.DB
}

// NewWpProjectRepository creates a new WordPress project repository instance
func NewWpProjectRepository(db *gorm.DB) WpProjectRepository {
	return &wpProjectRepository{db: db}
}

// Create stores a new analysis project
func (r *wpProjectRepository) Create(project *models.WpProject) error {
	return r.db.Create(project).Error
}

// GetByUUID retrieves a project by its public UUID
func (r *wpProjectRepository) GetByUUID(uuid string) (*models.WpProject, error) {
	var project models.WpProject
	err := r.db.Where("uuid = ?", uuid).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByUserID retrieves all projects for a user, newest first
func (r *wpProjectRepository) GetByUserID(userID uint) ([]models.WpProject, error) {
	var projects []models.WpProject
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// CreateIssue stores one analysis finding for a project
func (r *wpProjectRepository) CreateIssue(issue *models.WpIssue) error {
	return r.db.Create(issue).Error
}

// GetIssuesByProjectID returns all findings for a project
func (r *wpProjectRepository) GetIssuesByProjectID(projectID uint) ([]models.WpIssue, error) {
	var issues []models.WpIssue
	err := r.db.Where("project_id = ?", projectID).Find(&issues).Error
	return issues, err
}
