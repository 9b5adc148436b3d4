package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remonromany/wpgenius/app/models"
)

type fakeWalletRepo struct {
	transactions []models.WalletTransaction
	userBalance  float64
}

func (f *fakeWalletRepo) CreateTransaction(tx *models.WalletTransaction) error {
	tx.ID = uint(len(f.transactions) + 1)
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeWalletRepo) ListTransactionsByUser(userID uint) ([]models.WalletTransaction, error) {
	out := make([]models.WalletTransaction, 0, len(f.transactions))
	for i := len(f.transactions) - 1; i >= 0; i-- {
		if f.transactions[i].UserID == userID {
			out = append(out, f.transactions[i])
		}
	}
	return out, nil
}

func (f *fakeWalletRepo) SumTransactionsByUser(userID uint) (float64, error) {
	sum := 0.0
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			sum += tx.Amount
		}
	}
	return sum, nil
}

func (f *fakeWalletRepo) AddToUserBalance(userID uint, delta float64) error {
	f.userBalance += delta
	return nil
}

func (f *fakeWalletRepo) GetUser(userID uint) (*models.User, error) {
	return &models.User{ID: userID, WalletBalance: f.userBalance}, nil
}

func TestDepositCreditsWallet(t *testing.T) {
	repo := &fakeWalletRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	tx, err := svc.Deposit(ctx, 1, 10.00, "top up", "pi_123")
	require.NoError(t, err)
	assert.Equal(t, models.WALLET_TX_DEPOSIT, tx.Type)
	assert.Equal(t, 10.00, tx.Amount)

	balance, err := svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.00, balance)
	assert.Equal(t, 10.00, repo.userBalance)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(&fakeWalletRepo{})

	_, err := svc.Deposit(context.Background(), 1, 0, "", "")
	assert.Error(t, err)

	_, err = svc.Deposit(context.Background(), 1, -5, "", "")
	assert.Error(t, err)
}

func TestChargeUsageDebitsWallet(t *testing.T) {
	repo := &fakeWalletRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Deposit(ctx, 1, 5.00, "top up", "")
	require.NoError(t, err)

	tx, err := svc.ChargeUsage(ctx, 1, 0.002, "gpt-4o request")
	require.NoError(t, err)
	assert.Equal(t, models.WALLET_TX_USAGE, tx.Type)
	assert.Equal(t, -0.002, tx.Amount)

	balance, err := svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.998, balance, 1e-9)
}

func TestChargeUsageInsufficientBalance(t *testing.T) {
	svc := NewService(&fakeWalletRepo{})

	_, err := svc.ChargeUsage(context.Background(), 1, 0.002, "gpt-4o request")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestTransactionsNewestFirst(t *testing.T) {
	repo := &fakeWalletRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Deposit(ctx, 1, 1.00, "first", "")
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, 1, 2.00, "second", "")
	require.NoError(t, err)

	txs, err := svc.Transactions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "second", txs[0].Description)
}
