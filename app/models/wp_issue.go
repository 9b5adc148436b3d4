package models

import (
	"time"
)

const (
	WP_ISSUE_TYPE_SECURITY     = "security"
	WP_ISSUE_TYPE_PERFORMANCE  = "performance"
	WP_ISSUE_TYPE_CODE_QUALITY = "code_quality"

	WP_SEVERITY_CRITICAL = "critical"
	WP_SEVERITY_HIGH     = "high"
	WP_SEVERITY_MEDIUM   = "medium"
	WP_SEVERITY_LOW      = "low"
)

// WpIssue is a single finding inside an analyzed WordPress project.
type WpIssue struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"project_id"`
	Type         string    `gorm:"type:varchar(30);not null" json:"type"`
	Severity     string    `gorm:"type:varchar(20);not null" json:"severity"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	FilePath     string    `gorm:"type:varchar(255)" json:"file_path,omitempty"`
	LineNumber   int       `json:"line_number,omitempty"`
	CodeSnippet  string    `gorm:"type:text" json:"code_snippet,omitempty"`
	SuggestedFix string    `gorm:"type:text" json:"suggested_fix,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
