package transactions

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvillaluz/tindera-backend/pkg/db/models"
)

// TransactionDTO is one history row.
type TransactionDTO struct {
	ID              uint            `json:"id"`
	Date            time.Time       `json:"date"`
	PaymentTypeID   *uint           `json:"payment_type_id,omitempty"`
	PaymentTypeName *string         `json:"payment_type_name,omitempty"`
	TotalQty        int             `json:"total_qty"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// LineDTO is one sold line inside a transaction. ItemName is nil when the
// catalog item was deleted after the sale.
type LineDTO struct {
	ID       uint            `json:"id"`
	ItemID   *uint           `json:"item_id,omitempty"`
	ItemName *string         `json:"item_name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Qty      int             `json:"qty"`
	Total    decimal.Decimal `json:"total"`
}

// DetailDTO is a transaction with its lines.
type DetailDTO struct {
	TransactionDTO
	Items []LineDTO `json:"items"`
}

// NewTransactionDTO builds a history row from the persisted model.
func NewTransactionDTO(txn *models.Transaction) TransactionDTO {
	dto := TransactionDTO{
		ID:            txn.ID,
		Date:          txn.Date,
		PaymentTypeID: txn.PaymentTypeID,
		TotalQty:      txn.TotalQty,
		TotalPrice:    txn.TotalPrice,
	}
	if txn.PaymentType != nil {
		name := txn.PaymentType.Name
		dto.PaymentTypeName = &name
	}
	return dto
}

// NewDetailDTO builds the full view including line items.
func NewDetailDTO(txn *models.Transaction) *DetailDTO {
	detail := &DetailDTO{
		TransactionDTO: NewTransactionDTO(txn),
		Items:          make([]LineDTO, len(txn.Items)),
	}
	for i := range txn.Items {
		item := &txn.Items[i]
		line := LineDTO{
			ID:     item.ID,
			ItemID: item.ItemID,
			Price:  item.Price,
			Qty:    item.Qty,
			Total:  item.Total,
		}
		if item.Item != nil {
			name := item.Item.Name
			line.ItemName = &name
		}
		detail.Items[i] = line
	}
	return detail
}
