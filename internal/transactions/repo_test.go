package transactions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/pkg/db"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	"github.com/mvillaluz/tindera-backend/pkg/pagination"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = conn.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.Item{},
		&models.PaymentType{},
		&models.Transaction{},
		&models.TransactionItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func mustCreateTransaction(t *testing.T, conn *gorm.DB, date time.Time, paymentTypeID *uint) *models.Transaction {
	t.Helper()
	txn := &models.Transaction{
		PaymentTypeID: paymentTypeID,
		Date:          date,
		TotalQty:      1,
		TotalPrice:    price("10.00"),
	}
	if err := conn.Create(txn).Error; err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return txn
}

func TestRepositoryListNewestFirst(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	oldest := mustCreateTransaction(t, conn, base, nil)
	newest := mustCreateTransaction(t, conn, base.Add(2*time.Hour), nil)
	middle := mustCreateTransaction(t, conn, base.Add(time.Hour), nil)

	txns, total, err := repo.List(ctx, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d", total)
	}
	want := []uint{newest.ID, middle.ID, oldest.ID}
	for i, id := range want {
		if txns[i].ID != id {
			t.Fatalf("order broken at %d: got %d want %d", i, txns[i].ID, id)
		}
	}
}

func TestRepositoryListPaginates(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mustCreateTransaction(t, conn, base.Add(time.Duration(i)*time.Minute), nil)
	}

	page1, total, err := repo.List(ctx, pagination.Params{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 5 || len(page1) != 2 {
		t.Fatalf("total = %d len = %d", total, len(page1))
	}

	page3, _, err := repo.List(ctx, pagination.Params{Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(page3) != 1 {
		t.Fatalf("len(page3) = %d", len(page3))
	}
}

func TestRepositoryListPreloadsPaymentType(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	pt := &models.PaymentType{Name: "Cash"}
	if err := conn.Create(pt).Error; err != nil {
		t.Fatalf("create payment type: %v", err)
	}
	mustCreateTransaction(t, conn, time.Now(), &pt.ID)

	txns, _, err := repo.List(ctx, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txns) != 1 || txns[0].PaymentType == nil || txns[0].PaymentType.Name != "Cash" {
		t.Fatalf("payment type not preloaded: %+v", txns)
	}
}

func TestRepositoryFindByIDLoadsLines(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	item := &models.Item{Name: "Soda"}
	if err := conn.Create(item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	txn := mustCreateTransaction(t, conn, time.Now(), nil)
	lines := []models.TransactionItem{
		{TransactionID: &txn.ID, ItemID: &item.ID, Price: price("15.00"), Qty: 2, Total: price("30.00")},
		{TransactionID: &txn.ID, Price: price("5.00"), Qty: 1, Total: price("5.00")},
	}
	if err := conn.Create(&lines).Error; err != nil {
		t.Fatalf("create lines: %v", err)
	}

	loaded, err := repo.FindByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("items = %+v", loaded.Items)
	}
	if loaded.Items[0].Item == nil || loaded.Items[0].Item.Name != "Soda" {
		t.Fatalf("item not preloaded: %+v", loaded.Items[0])
	}
	if loaded.Items[1].Item != nil {
		t.Fatalf("expected nil item for detached line")
	}
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.FindByID(context.Background(), 404)
	if !db.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
