package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

// Line is one cart entry. Identity is (ItemID, UnitPrice): the same item rung
// up at two different prices stays on two lines. Name and grouping names are
// display snapshots taken when the line was first added.
type Line struct {
	ItemID          uint
	Name            string
	CategoryName    *string
	SubcategoryName *string
	UnitPrice       decimal.Decimal
	Qty             int
}

// Total returns UnitPrice * Qty for the line.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart is an insertion-ordered set of lines unique on (ItemID, UnitPrice).
// Qty stays >= 1 while a line exists. Safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

func (c *Cart) findLocked(itemID uint, unitPrice decimal.Decimal) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID && c.lines[i].UnitPrice.Equal(unitPrice) {
			return i
		}
	}
	return -1
}

// Add merges the line into an existing (ItemID, UnitPrice) entry or appends a
// new one at the end. Non-positive qty is coerced to 1. A negative unit price
// is rejected and the cart is left unchanged.
func (c *Cart) Add(line Line) error {
	if line.UnitPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price must not be negative")
	}
	if line.Qty < 1 {
		line.Qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.findLocked(line.ItemID, line.UnitPrice); i >= 0 {
		c.lines[i].Qty += line.Qty
		return nil
	}
	c.lines = append(c.lines, line)
	return nil
}

// RemoveOne decrements the matching line by one, dropping it when the qty
// reaches zero. Absent lines are a no-op.
func (c *Cart) RemoveOne(itemID uint, unitPrice decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.findLocked(itemID, unitPrice)
	if i < 0 {
		return
	}
	if c.lines[i].Qty > 1 {
		c.lines[i].Qty--
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// RemoveAll drops the matching line regardless of qty. Absent lines are a
// no-op.
func (c *Cart) RemoveAll(itemID uint, unitPrice decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.findLocked(itemID, unitPrice)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Totals sums qty and price over all lines.
func (c *Cart) Totals() (int, decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totals(c.lines)
}

func totals(lines []Line) (int, decimal.Decimal) {
	qty := 0
	price := decimal.Zero
	for _, l := range lines {
		qty += l.Qty
		price = price.Add(l.Total())
	}
	return qty, price
}
