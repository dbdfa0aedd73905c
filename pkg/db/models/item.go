package models

// Item is a sellable catalog entry. There is no stored price; the unit price
// is keyed in at sale time. Category references null out when the referenced
// row is deleted.
type Item struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryID    *uint  `gorm:"column:category_id"`
	SubcategoryID *uint  `gorm:"column:subcategory_id"`
	Name          string `gorm:"column:name;not null"`

	Category    *Category    `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:SET NULL"`
}

func (Item) TableName() string { return "items" }
