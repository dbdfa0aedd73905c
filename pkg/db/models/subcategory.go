package models

// Subcategory is a second-level grouping under a category. Deleting the
// parent category cascades to its subcategories.
type Subcategory struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID uint   `gorm:"column:category_id;not null"`
	Name       string `gorm:"column:name;not null"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Subcategory) TableName() string { return "subcategories" }
