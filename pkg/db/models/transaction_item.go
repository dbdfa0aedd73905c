package models

import "github.com/shopspring/decimal"

// TransactionItem is one line of a finalized sale. Price and total are
// snapshots from the cart; item_id nulls out if the catalog item is later
// deleted.
type TransactionItem struct {
	ID            uint            `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID *uint           `gorm:"column:transaction_id"`
	ItemID        *uint           `gorm:"column:item_id"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric;not null"`
	Qty           int             `gorm:"column:qty;not null"`
	Total         decimal.Decimal `gorm:"column:total;type:numeric;not null"`

	Item *Item `gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL"`
}

func (TransactionItem) TableName() string { return "transaction_items" }
