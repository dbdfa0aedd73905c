package checkout

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/internal/repo"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
)

// Repository writes finalized sales.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	CreateTransactionItems(ctx context.Context, items []models.TransactionItem) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a checkout repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: r.Rebind(tx)}
}

func (r *repository) CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	if err := r.DB(ctx).Omit("Items", "PaymentType").Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *repository) CreateTransactionItems(ctx context.Context, items []models.TransactionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB(ctx).Omit("Item").Create(&items).Error
}
