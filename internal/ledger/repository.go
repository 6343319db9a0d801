package ledger

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// Repository is the durable store behind the ledger. Every method is scoped
// to a single user so an implementation can never leak another user's rows.
// Get reports an absent transaction as (nil, nil): "not there" is a valid
// read result, only a broken store returns an error.
type Repository interface {
	ListByUser(userID uint) ([]models.Transaction, error)
	Get(userID, id uint) (*models.Transaction, error)
	Create(tx *models.Transaction) error
	Update(tx *models.Transaction) error
	Delete(userID, id uint) (bool, error)
}

// GormRepository persists transactions through gorm (SQLite in production).
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (r *GormRepository) Get(userID, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}

func (r *GormRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *GormRepository) Update(tx *models.Transaction) error {
	if err := r.db.Save(tx).Error; err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (r *GormRepository) Delete(userID, id uint) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return false, fmt.Errorf("delete transaction: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

var _ Repository = (*GormRepository)(nil)
