package catalog

import "github.com/mvillaluz/tindera-backend/pkg/db/models"

// CategoryDTO is the category payload returned to clients.
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SubcategoryDTO is the subcategory payload returned to clients.
type SubcategoryDTO struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
}

// ItemDTO is the item payload with denormalized grouping names.
type ItemDTO struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	CategoryID      *uint   `json:"category_id,omitempty"`
	CategoryName    *string `json:"category_name,omitempty"`
	SubcategoryID   *uint   `json:"subcategory_id,omitempty"`
	SubcategoryName *string `json:"subcategory_name,omitempty"`
}

// NewCategoryDTO builds a DTO from the persisted model.
func NewCategoryDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}

// NewSubcategoryDTO builds a DTO from the persisted model.
func NewSubcategoryDTO(s *models.Subcategory) SubcategoryDTO {
	return SubcategoryDTO{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name}
}

// NewItemDTO builds a DTO from the persisted model, carrying the preloaded
// category and subcategory names when present.
func NewItemDTO(item *models.Item) ItemDTO {
	dto := ItemDTO{
		ID:            item.ID,
		Name:          item.Name,
		CategoryID:    item.CategoryID,
		SubcategoryID: item.SubcategoryID,
	}
	if item.Category != nil {
		name := item.Category.Name
		dto.CategoryName = &name
	}
	if item.Subcategory != nil {
		name := item.Subcategory.Name
		dto.SubcategoryName = &name
	}
	return dto
}

// MenuSubcategoryDTO is one subcategory bucket on the menu.
type MenuSubcategoryDTO struct {
	ID    uint      `json:"id"`
	Name  string    `json:"name"`
	Items []ItemDTO `json:"items"`
}

// MenuCategoryDTO is one category bucket on the menu. Items holds entries
// assigned directly to the category without a subcategory.
type MenuCategoryDTO struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	Items         []ItemDTO            `json:"items"`
	Subcategories []MenuSubcategoryDTO `json:"subcategories"`
}

// MenuDTO is the navigation projection over the whole catalog.
type MenuDTO struct {
	Uncategorized []ItemDTO         `json:"uncategorized"`
	Categories    []MenuCategoryDTO `json:"categories"`
}
