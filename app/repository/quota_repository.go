package repository

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// quotaRepository implements the QuotaRepository interface
type quotaRepository struct {
	db *gorm.DB
}

// NewQuotaRepository creates a new API quota repository instance
func NewQuotaRepository(db *gorm.DB) QuotaRepository {
	return &quotaRepository{db: db}
}

// GetByUserID returns all quota rows for a user, oldest first.
func (r *quotaRepository) GetByUserID(userID uint) ([]models.ApiQuota, error) {
	var quotas []models.ApiQuota
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&quotas).Error
	return quotas, err
}

// Upsert creates or updates a quota row keyed by (user_id, provider),
// merging the counter, limit and reset timestamp.
func (r *quotaRepository) Upsert(quota *models.ApiQuota) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "provider"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"used_today",
			"daily_limit",
			"cost_per_request",
			"is_free",
			"last_reset_at",
		}),
	}).Create(quota).Error; err != nil {
		return err
	}

	// Ensure ID is populated after upsert.
	return r.db.Where("user_id = ? AND provider = ?", quota.UserID, quota.Provider).
		First(quota).Error
}

// IncrementUsed bumps used_today atomically at the database level.
func (r *quotaRepository) IncrementUsed(userID uint, provider string) error {
	return r.db.Model(&models.ApiQuota{}).
		Where("user_id = ? AND provider = ?", userID, provider).
		UpdateColumn("used_today", gorm.Expr("used_today + ?", 1)).Error
}
