package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WP_PROJECT_TYPE_THEME  = "theme"
	WP_PROJECT_TYPE_PLUGIN = "plugin"
)

// WpProject is one analyzed WordPress theme or plugin package.
type WpProject struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	UUID              string    `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	UserID            uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Type              string    `gorm:"type:varchar(20);not null" json:"type"`
	Version           string    `gorm:"type:varchar(50)" json:"version"`
	SecurityScore     int       `json:"security_score"`
	PerformanceScore  int       `json:"performance_score"`
	CodeQualityScore  int       `json:"code_quality_score"`
	AnalysisData      string    `gorm:"type:json" json:"analysis_data,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *WpProject) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}
