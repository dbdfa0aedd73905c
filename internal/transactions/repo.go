package transactions

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/internal/repo"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	"github.com/mvillaluz/tindera-backend/pkg/pagination"
)

// Repository reads finalized sales.
type Repository interface {
	List(ctx context.Context, params pagination.Params) ([]models.Transaction, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a transaction history repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) List(ctx context.Context, params pagination.Params) ([]models.Transaction, int64, error) {
	params = params.Normalize()

	var total int64
	if err := r.DB(ctx).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []models.Transaction
	err := r.DB(ctx).
		Preload("PaymentType").
		Order("date DESC").
		Order("id DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.DB(ctx).
		Preload("PaymentType").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("transaction_items.id ASC")
		}).
		Preload("Items.Item").
		First(&txn, id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
