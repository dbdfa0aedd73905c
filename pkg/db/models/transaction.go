package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one finalized sale. Rows are written once at checkout and
// never updated.
type Transaction struct {
	ID            uint            `gorm:"column:id;primaryKey;autoIncrement"`
	PaymentTypeID *uint           `gorm:"column:payment_type_id"`
	Date          time.Time       `gorm:"column:date;not null"`
	TotalQty      int             `gorm:"column:total_qty;not null"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:numeric;not null"`

	PaymentType *PaymentType      `gorm:"foreignKey:PaymentTypeID;constraint:OnDelete:SET NULL"`
	Items       []TransactionItem `gorm:"foreignKey:TransactionID"`
}

func (Transaction) TableName() string { return "transactions" }
