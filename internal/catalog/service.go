package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvillaluz/tindera-backend/pkg/db"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

// Service exposes catalog management and reads.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	GetCategory(ctx context.Context, id uint) (*CategoryDTO, error)
	CreateCategory(ctx context.Context, input NameInput) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint, input NameInput) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListSubcategories(ctx context.Context, categoryID *uint) ([]SubcategoryDTO, error)
	GetSubcategory(ctx context.Context, id uint) (*SubcategoryDTO, error)
	CreateSubcategory(ctx context.Context, input SubcategoryInput) (*SubcategoryDTO, error)
	UpdateSubcategory(ctx context.Context, id uint, input NameInput) (*SubcategoryDTO, error)
	DeleteSubcategory(ctx context.Context, id uint) error

	ListItems(ctx context.Context) ([]ItemDTO, error)
	GetItem(ctx context.Context, id uint) (*ItemDTO, error)
	CreateItem(ctx context.Context, input ItemInput) (*ItemDTO, error)
	UpdateItem(ctx context.Context, id uint, input ItemInput) (*ItemDTO, error)
	DeleteItem(ctx context.Context, id uint) error

	Menu(ctx context.Context) (*MenuDTO, error)
}

// NameInput carries the single editable field of categories, subcategories and
// payment types.
type NameInput struct {
	Name string
}

// SubcategoryInput creates a subcategory under an existing category.
type SubcategoryInput struct {
	CategoryID uint
	Name       string
}

// ItemInput creates or replaces an item. Grouping references are optional.
type ItemInput struct {
	Name          string
	CategoryID    *uint
	SubcategoryID *uint
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	return trimmed, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	out := make([]CategoryDTO, len(categories))
	for i := range categories {
		out[i] = NewCategoryDTO(&categories[i])
	}
	return out, nil
}

func (s *service) GetCategory(ctx context.Context, id uint) (*CategoryDTO, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	dto := NewCategoryDTO(category)
	return &dto, nil
}

func (s *service) CreateCategory(ctx context.Context, input NameInput) (*CategoryDTO, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.CreateCategory(ctx, &models.Category{Name: name})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	dto := NewCategoryDTO(category)
	return &dto, nil
}

func (s *service) UpdateCategory(ctx context.Context, id uint, input NameInput) (*CategoryDTO, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCategory(ctx, id, map[string]any{"name": name}); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update category")
	}
	return s.GetCategory(ctx, id)
}

func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	return nil
}

func (s *service) ListSubcategories(ctx context.Context, categoryID *uint) ([]SubcategoryDTO, error) {
	subs, err := s.repo.ListSubcategories(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subcategories")
	}
	out := make([]SubcategoryDTO, len(subs))
	for i := range subs {
		out[i] = NewSubcategoryDTO(&subs[i])
	}
	return out, nil
}

func (s *service) GetSubcategory(ctx context.Context, id uint) (*SubcategoryDTO, error) {
	sub, err := s.repo.FindSubcategoryByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load subcategory")
	}
	dto := NewSubcategoryDTO(sub)
	return &dto, nil
}

func (s *service) CreateSubcategory(ctx context.Context, input SubcategoryInput) (*SubcategoryDTO, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	sub, err := s.repo.CreateSubcategory(ctx, &models.Subcategory{
		CategoryID: input.CategoryID,
		Name:       name,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create subcategory")
	}
	dto := NewSubcategoryDTO(sub)
	return &dto, nil
}

func (s *service) UpdateSubcategory(ctx context.Context, id uint, input NameInput) (*SubcategoryDTO, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSubcategory(ctx, id, map[string]any{"name": name}); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update subcategory")
	}
	return s.GetSubcategory(ctx, id)
}

func (s *service) DeleteSubcategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteSubcategory(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete subcategory")
	}
	return nil
}

func (s *service) ListItems(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	out := make([]ItemDTO, len(items))
	for i := range items {
		out[i] = NewItemDTO(&items[i])
	}
	return out, nil
}

func (s *service) GetItem(ctx context.Context, id uint) (*ItemDTO, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	dto := NewItemDTO(item)
	return &dto, nil
}

// validateItemRefs checks grouping references and rejects a subcategory that
// does not belong to the named category.
func (s *service) validateItemRefs(ctx context.Context, input ItemInput) error {
	if input.CategoryID != nil {
		if _, err := s.repo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
		}
	}
	if input.SubcategoryID != nil {
		sub, err := s.repo.FindSubcategoryByID(ctx, *input.SubcategoryID)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeValidation, "subcategory does not exist")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load subcategory")
		}
		if input.CategoryID == nil || sub.CategoryID != *input.CategoryID {
			return pkgerrors.New(pkgerrors.CodeValidation, "subcategory does not belong to category")
		}
	}
	return nil
}

func (s *service) CreateItem(ctx context.Context, input ItemInput) (*ItemDTO, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.validateItemRefs(ctx, input); err != nil {
		return nil, err
	}
	item, err := s.repo.CreateItem(ctx, &models.Item{
		Name:          name,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}
	return s.GetItem(ctx, item.ID)
}

func (s *service) UpdateItem(ctx context.Context, id uint, input ItemInput) (*ItemDTO, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.validateItemRefs(ctx, input); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":           name,
		"category_id":    input.CategoryID,
		"subcategory_id": input.SubcategoryID,
	}
	if err := s.repo.UpdateItem(ctx, id, updates); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item")
	}
	return s.GetItem(ctx, id)
}

func (s *service) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	return nil
}
