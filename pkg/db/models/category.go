package models

// Category is a top-level menu grouping.
type Category struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
}

func (Category) TableName() string { return "categories" }
