package models

import (
	"time"
)

// ApiQuota tracks one user's daily request allowance for one AI provider.
// The used counter is reset lazily whenever a new calendar day is detected
// on access, not via a scheduled job.
type ApiQuota struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_api_quotas_user_provider;constraint:OnDelete:CASCADE" json:"user_id"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_api_quotas_user_provider" json:"provider"`
	UsedToday      int       `gorm:"not null;default:0" json:"used_today"`
	DailyLimit     int       `gorm:"not null" json:"daily_limit"`
	CostPerRequest float64   `gorm:"type:decimal(10,6);default:0.000000" json:"cost_per_request"`
	IsFree         bool      `gorm:"default:true" json:"is_free"`
	LastResetAt    time.Time `gorm:"autoCreateTime" json:"last_reset_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Remaining returns how many free requests are left today. Negative values
// are clamped to zero.
func (q *ApiQuota) Remaining() int {
	remaining := q.DailyLimit - q.UsedToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NeedsDailyReset reports whether the quota was last reset on a different
// calendar day than now (local reference timezone).
func (q *ApiQuota) NeedsDailyReset(now time.Time) bool {
	ly, lm, ld := q.LastResetAt.Date()
	ny, nm, nd := now.Date()
	return ly != ny || lm != nm || ld != nd
}
