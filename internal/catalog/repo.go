package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/internal/repo"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
)

// Repository exposes catalog persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, updates map[string]any) error
	DeleteCategory(ctx context.Context, id uint) error

	ListSubcategories(ctx context.Context, categoryID *uint) ([]models.Subcategory, error)
	FindSubcategoryByID(ctx context.Context, id uint) (*models.Subcategory, error)
	CreateSubcategory(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id uint, updates map[string]any) error
	DeleteSubcategory(ctx context.Context, id uint) error

	ListItems(ctx context.Context) ([]models.Item, error)
	FindItemByID(ctx context.Context, id uint) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	UpdateItem(ctx context.Context, id uint, updates map[string]any) error
	DeleteItem(ctx context.Context, id uint) error
}

type repository struct {
	repo.Base
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: r.Rebind(tx)}
}

func (r *repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB(ctx).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB(ctx).
		Model(&models.Category{}).
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

func (r *repository) DeleteCategory(ctx context.Context, id uint) error {
	res := r.DB(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListSubcategories(ctx context.Context, categoryID *uint) ([]models.Subcategory, error) {
	q := r.DB(ctx).Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var subs []models.Subcategory
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *repository) FindSubcategoryByID(ctx context.Context, id uint) (*models.Subcategory, error) {
	var sub models.Subcategory
	if err := r.DB(ctx).First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) CreateSubcategory(ctx context.Context, sub *models.Subcategory) (*models.Subcategory, error) {
	if err := r.DB(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *repository) UpdateSubcategory(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB(ctx).
		Model(&models.Subcategory{}).
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

func (r *repository) DeleteSubcategory(ctx context.Context, id uint) error {
	res := r.DB(ctx).Delete(&models.Subcategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.DB(ctx).
		Preload("Category").
		Preload("Subcategory").
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindItemByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.DB(ctx).
		Preload("Category").
		Preload("Subcategory").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.DB(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) UpdateItem(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB(ctx).
		Model(&models.Item{}).
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

func (r *repository) DeleteItem(ctx context.Context, id uint) error {
	res := r.DB(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
