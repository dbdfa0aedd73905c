package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvillaluz/tindera-backend/pkg/db"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

// ItemFinder resolves catalog items for display snapshots.
type ItemFinder interface {
	FindItemByID(ctx context.Context, id uint) (*models.Item, error)
}

// LineDTO is one cart line as returned to clients.
type LineDTO struct {
	ItemID          uint            `json:"item_id"`
	Name            string          `json:"name"`
	CategoryName    *string         `json:"category_name,omitempty"`
	SubcategoryName *string         `json:"subcategory_name,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Qty             int             `json:"qty"`
	Total           decimal.Decimal `json:"total"`
}

// CartDTO is the full cart view with derived totals.
type CartDTO struct {
	Lines      []LineDTO       `json:"lines"`
	TotalQty   int             `json:"total_qty"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// AddItemInput adds qty units of an item at the keyed-in unit price.
type AddItemInput struct {
	ItemID    uint
	UnitPrice decimal.Decimal
	Qty       int
}

// Service exposes per-session cart operations.
type Service interface {
	View(ctx context.Context, sessionID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, input AddItemInput) (*CartDTO, error)
	RemoveOne(ctx context.Context, sessionID uuid.UUID, itemID uint, unitPrice decimal.Decimal) (*CartDTO, error)
	RemoveAll(ctx context.Context, sessionID uuid.UUID, itemID uint, unitPrice decimal.Decimal) (*CartDTO, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

type service struct {
	registry *Registry
	catalog  ItemFinder
}

// NewService builds a cart service with the required dependencies.
func NewService(registry *Registry, catalog ItemFinder) (Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog item finder required")
	}
	return &service{registry: registry, catalog: catalog}, nil
}

func toDTO(c *Cart) *CartDTO {
	lines := c.Lines()
	dto := &CartDTO{
		Lines:      make([]LineDTO, len(lines)),
		TotalPrice: decimal.Zero,
	}
	for i, l := range lines {
		dto.Lines[i] = LineDTO{
			ItemID:          l.ItemID,
			Name:            l.Name,
			CategoryName:    l.CategoryName,
			SubcategoryName: l.SubcategoryName,
			UnitPrice:       l.UnitPrice,
			Qty:             l.Qty,
			Total:           l.Total(),
		}
		dto.TotalQty += l.Qty
		dto.TotalPrice = dto.TotalPrice.Add(l.Total())
	}
	return dto
}

func (s *service) View(_ context.Context, sessionID uuid.UUID) (*CartDTO, error) {
	return toDTO(s.registry.Get(sessionID)), nil
}

// AddItem snapshots the item's name and grouping names at add time. Later
// catalog edits never touch lines already in a cart.
func (s *service) AddItem(ctx context.Context, sessionID uuid.UUID, input AddItemInput) (*CartDTO, error) {
	if input.UnitPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price must not be negative")
	}

	item, err := s.catalog.FindItemByID(ctx, input.ItemID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}

	line := Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: input.UnitPrice,
		Qty:       input.Qty,
	}
	if item.Category != nil {
		name := item.Category.Name
		line.CategoryName = &name
	}
	if item.Subcategory != nil {
		name := item.Subcategory.Name
		line.SubcategoryName = &name
	}

	c := s.registry.Get(sessionID)
	if err := c.Add(line); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *service) RemoveOne(_ context.Context, sessionID uuid.UUID, itemID uint, unitPrice decimal.Decimal) (*CartDTO, error) {
	c := s.registry.Get(sessionID)
	c.RemoveOne(itemID, unitPrice)
	return toDTO(c), nil
}

func (s *service) RemoveAll(_ context.Context, sessionID uuid.UUID, itemID uint, unitPrice decimal.Decimal) (*CartDTO, error) {
	c := s.registry.Get(sessionID)
	c.RemoveAll(itemID, unitPrice)
	return toDTO(c), nil
}

func (s *service) Clear(_ context.Context, sessionID uuid.UUID) error {
	if c, ok := s.registry.Peek(sessionID); ok {
		c.Clear()
	}
	return nil
}
