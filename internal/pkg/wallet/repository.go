package wallet

import (
	"github.com/remonromany/wpgenius/app/models"
	"gorm.io/gorm"
)

// Repository provides DB operations used by the wallet service.
type Repository interface {
	CreateTransaction(tx *models.WalletTransaction) error
	ListTransactionsByUser(userID uint) ([]models.WalletTransaction, error)
	SumTransactionsByUser(userID uint) (float64, error)
	AddToUserBalance(userID uint, delta float64) error
	GetUser(userID uint) (*models.User, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a wallet repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateTransaction(tx *models.WalletTransaction) error {
	return r.db.Create(tx).Error
}

func (r *gormRepository) ListTransactionsByUser(userID uint) ([]models.WalletTransaction, error) {
	var transactions []models.WalletTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *gormRepository) SumTransactionsByUser(userID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&models.WalletTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error
	return sum, err
}

// AddToUserBalance moves the denormalized balance column atomically so
// concurrent charges cannot lose updates.
func (r *gormRepository) AddToUserBalance(userID uint, delta float64) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", delta)).Error
}

func (r *gormRepository) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
