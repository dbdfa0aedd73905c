package paymenttypes

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/internal/repo"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
)

// Repository exposes payment type persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.PaymentType, error)
	FindByID(ctx context.Context, id uint) (*models.PaymentType, error)
	Create(ctx context.Context, pt *models.PaymentType) (*models.PaymentType, error)
	Update(ctx context.Context, id uint, updates map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a payment type repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: r.Rebind(tx)}
}

func (r *repository) List(ctx context.Context) ([]models.PaymentType, error) {
	var types []models.PaymentType
	err := r.DB(ctx).
		Order("id ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.PaymentType, error) {
	var pt models.PaymentType
	if err := r.DB(ctx).First(&pt, id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *repository) Create(ctx context.Context, pt *models.PaymentType) (*models.PaymentType, error) {
	if err := r.DB(ctx).Create(pt).Error; err != nil {
		return nil, err
	}
	return pt, nil
}

func (r *repository) Update(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB(ctx).
		Model(&models.PaymentType{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.DB(ctx).Delete(&models.PaymentType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
