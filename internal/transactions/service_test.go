package transactions

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
	"github.com/mvillaluz/tindera-backend/pkg/pagination"
)

type stubRepo struct {
	listFn func(ctx context.Context, params pagination.Params) ([]models.Transaction, int64, error)
	findFn func(ctx context.Context, id uint) (*models.Transaction, error)
}

func (s *stubRepo) List(ctx context.Context, params pagination.Params) ([]models.Transaction, int64, error) {
	return s.listFn(ctx, params)
}

func (s *stubRepo) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	return s.findFn(ctx, id)
}

func TestNewServiceRequiresRepo(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatalf("expected error for nil repository")
	}
}

func TestListBuildsDTOsAndMeta(t *testing.T) {
	t.Parallel()

	cash := "Cash"
	repo := &stubRepo{
		listFn: func(_ context.Context, params pagination.Params) ([]models.Transaction, int64, error) {
			return []models.Transaction{
				{
					ID:          2,
					Date:        time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
					TotalQty:    3,
					TotalPrice:  price("45.00"),
					PaymentType: &models.PaymentType{ID: 1, Name: cash},
				},
				{ID: 1, Date: time.Date(2026, 8, 30, 17, 0, 0, 0, time.UTC), TotalQty: 1, TotalPrice: price("5.00")},
			}, 12, nil
		},
	}
	svc, _ := NewService(repo)

	rows, meta, err := svc.List(context.Background(), pagination.Params{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].PaymentTypeName == nil || *rows[0].PaymentTypeName != "Cash" {
		t.Fatalf("payment type name = %v", rows[0].PaymentTypeName)
	}
	if rows[1].PaymentTypeName != nil {
		t.Fatalf("expected nil payment type name")
	}
	if meta.Page != 2 || meta.PageSize != 2 || meta.TotalCount != 12 {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestListWrapsDependencyError(t *testing.T) {
	t.Parallel()

	boom := errors.New("io error")
	repo := &stubRepo{
		listFn: func(context.Context, pagination.Params) ([]models.Transaction, int64, error) {
			return nil, 0, boom
		},
	}
	svc, _ := NewService(repo)

	_, _, err := svc.List(context.Background(), pagination.Params{})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause")
	}
}

func TestGetMapsNotFound(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		findFn: func(context.Context, uint) (*models.Transaction, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Get(context.Background(), 7)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetBuildsDetail(t *testing.T) {
	t.Parallel()

	itemID := uint(9)
	repo := &stubRepo{
		findFn: func(_ context.Context, id uint) (*models.Transaction, error) {
			return &models.Transaction{
				ID:         id,
				Date:       time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
				TotalQty:   2,
				TotalPrice: price("30.00"),
				Items: []models.TransactionItem{
					{
						ID:     1,
						ItemID: &itemID,
						Item:   &models.Item{ID: itemID, Name: "Soda"},
						Price:  price("15.00"),
						Qty:    2,
						Total:  price("30.00"),
					},
					{ID: 2, Price: price("1.00"), Qty: 1, Total: price("1.00")},
				},
			}, nil
		},
	}
	svc, _ := NewService(repo)

	detail, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.ID != 3 || len(detail.Items) != 2 {
		t.Fatalf("detail = %+v", detail)
	}
	if detail.Items[0].ItemName == nil || *detail.Items[0].ItemName != "Soda" {
		t.Fatalf("item name = %v", detail.Items[0].ItemName)
	}
	if detail.Items[1].ItemName != nil {
		t.Fatalf("expected nil item name for detached line")
	}
}
