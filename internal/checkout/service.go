package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/internal/cart"
	"github.com/mvillaluz/tindera-backend/pkg/db"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// PaymentTypeFinder validates the optional tender reference.
type PaymentTypeFinder interface {
	FindByID(ctx context.Context, id uint) (*models.PaymentType, error)
}

// ReceiptDTO summarizes a finalized sale.
type ReceiptDTO struct {
	TransactionID uint            `json:"transaction_id"`
	Date          time.Time       `json:"date"`
	TotalQty      int             `json:"total_qty"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Service finalizes carts into durable transactions.
type Service interface {
	Finalize(ctx context.Context, sessionID uuid.UUID, paymentTypeID *uint) (*ReceiptDTO, error)
}

type service struct {
	repo         Repository
	tx           txRunner
	registry     *cart.Registry
	paymentTypes PaymentTypeFinder
	now          func() time.Time
}

// NewService builds a checkout service with the required dependencies.
func NewService(repo Repository, tx txRunner, registry *cart.Registry, paymentTypes PaymentTypeFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if registry == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	if paymentTypes == nil {
		return nil, fmt.Errorf("payment type finder required")
	}
	return &service{
		repo:         repo,
		tx:           tx,
		registry:     registry,
		paymentTypes: paymentTypes,
		now:          time.Now,
	}, nil
}

// Finalize writes the transaction header and one row per cart line in a
// single transaction. The cart is cleared only after the commit succeeds; any
// failure leaves it intact for retry.
func (s *service) Finalize(ctx context.Context, sessionID uuid.UUID, paymentTypeID *uint) (*ReceiptDTO, error) {
	c, ok := s.registry.Peek(sessionID)
	if !ok || c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	if paymentTypeID != nil {
		if _, err := s.paymentTypes.FindByID(ctx, *paymentTypeID); err != nil {
			if db.IsNotFound(err) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment type does not exist")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment type")
		}
	}

	lines := c.Lines()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	totalQty := 0
	totalPrice := decimal.Zero
	for _, l := range lines {
		totalQty += l.Qty
		totalPrice = totalPrice.Add(l.Total())
	}

	txn := &models.Transaction{
		PaymentTypeID: paymentTypeID,
		Date:          s.now(),
		TotalQty:      totalQty,
		TotalPrice:    totalPrice,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.CreateTransaction(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create transaction")
		}

		items := make([]models.TransactionItem, len(lines))
		for i, l := range lines {
			itemID := l.ItemID
			items[i] = models.TransactionItem{
				TransactionID: &txn.ID,
				ItemID:        &itemID,
				Price:         l.UnitPrice,
				Qty:           l.Qty,
				Total:         l.Total(),
			}
		}
		if err := repo.CreateTransactionItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create transaction items")
		}
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) == nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finalize transaction")
		}
		return nil, err
	}

	c.Clear()

	return &ReceiptDTO{
		TransactionID: txn.ID,
		Date:          txn.Date,
		TotalQty:      totalQty,
		TotalPrice:    totalPrice,
	}, nil
}
