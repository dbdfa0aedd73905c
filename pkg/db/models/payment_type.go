package models

// PaymentType is a named tender option (cash, card, e-wallet, ...).
type PaymentType struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
}

func (PaymentType) TableName() string { return "payment_types" }
