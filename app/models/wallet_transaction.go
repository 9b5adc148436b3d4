package models

import (
	"time"
)

const (
	WALLET_TX_DEPOSIT = "deposit"
	WALLET_TX_USAGE   = "usage"
	WALLET_TX_REFUND  = "refund"
)

// WalletTransaction is a single movement on a user's wallet. Deposits carry
// positive amounts, usage charges negative ones.
type WalletTransaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Amount          float64   `gorm:"type:decimal(10,6);not null" json:"amount"`
	Type            string    `gorm:"type:varchar(20);not null" json:"type"`
	Description     string    `gorm:"type:varchar(255)" json:"description"`
	StripePaymentID string    `gorm:"type:varchar(100)" json:"stripe_payment_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}
