package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApiQuotaRemaining(t *testing.T) {
	tests := []struct {
		name     string
		quota    ApiQuota
		expected int
	}{
		{"untouched", ApiQuota{DailyLimit: 1500, UsedToday: 0}, 1500},
		{"partially used", ApiQuota{DailyLimit: 1500, UsedToday: 600}, 900},
		{"exhausted", ApiQuota{DailyLimit: 1000, UsedToday: 1000}, 0},
		{"over limit clamps to zero", ApiQuota{DailyLimit: 1000, UsedToday: 1200}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.quota.Remaining())
		})
	}
}

func TestApiQuotaNeedsDailyReset(t *testing.T) {
	lastReset := time.Date(2025, 3, 10, 22, 15, 0, 0, time.Local)
	quota := ApiQuota{LastResetAt: lastReset}

	assert.False(t, quota.NeedsDailyReset(lastReset))
	assert.False(t, quota.NeedsDailyReset(time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local)))
	assert.True(t, quota.NeedsDailyReset(time.Date(2025, 3, 11, 0, 5, 0, 0, time.Local)))
	assert.True(t, quota.NeedsDailyReset(lastReset.AddDate(0, 1, 0)))
	assert.True(t, quota.NeedsDailyReset(lastReset.AddDate(1, 0, 0)))
}
