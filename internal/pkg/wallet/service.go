package wallet

import (
	"context"
	"errors"
	"strings"

	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// ErrInsufficientBalance is returned when a charge would push the wallet
// below zero.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// ErrInvalidAmount is returned for zero or negative movement amounts.
var ErrInvalidAmount = errors.New("amount must be positive")

// Service records wallet movements and keeps the user's denormalized
// balance in sync with the transaction ledger.
type Service struct {
	repo Repository
}

// NewService creates a wallet service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a wallet service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Balance returns the user's current wallet balance from the ledger.
func (s *Service) Balance(ctx context.Context, userID uint) (float64, error) {
	_ = ctx
	if userID == 0 {
		return 0, errors.New("user_id is required")
	}
	return s.repo.SumTransactionsByUser(userID)
}

// Transactions returns the user's wallet movements, newest first.
func (s *Service) Transactions(ctx context.Context, userID uint) ([]models.WalletTransaction, error) {
	_ = ctx
	if userID == 0 {
		return nil, errors.New("user_id is required")
	}
	return s.repo.ListTransactionsByUser(userID)
}

// Deposit credits the wallet. Payment processor mechanics live upstream;
// this only records the already-confirmed movement.
func (s *Service) Deposit(ctx context.Context, userID uint, amount float64, description, stripePaymentID string) (*models.WalletTransaction, error) {
	_ = ctx
	if userID == 0 {
		return nil, errors.New("user_id is required")
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx := &models.WalletTransaction{
		UserID:          userID,
		Amount:          amount,
		Type:            models.WALLET_TX_DEPOSIT,
		Description:     strings.TrimSpace(description),
		StripePaymentID: strings.TrimSpace(stripePaymentID),
	}
	if err := s.repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	if err := s.repo.AddToUserBalance(userID, tx.Amount); err != nil {
		return nil, err
	}
	return tx, nil
}

// ChargeUsage debits the wallet for one paid AI request. The balance check
// is a courtesy guard for the request handler; routing decisions never
// consult the wallet.
func (s *Service) ChargeUsage(ctx context.Context, userID uint, amount float64, description string) (*models.WalletTransaction, error) {
	_ = ctx
	if userID == 0 {
		return nil, errors.New("user_id is required")
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	balance, err := s.repo.SumTransactionsByUser(userID)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, ErrInsufficientBalance
	}

	tx := &models.WalletTransaction{
		UserID:      userID,
		Amount:      -amount,
		Type:        models.WALLET_TX_USAGE,
		Description: strings.TrimSpace(description),
	}
	if err := s.repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	if err := s.repo.AddToUserBalance(userID, tx.Amount); err != nil {
		return nil, err
	}
	return tx, nil
}
