package paymenttypes

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

type stubRepo struct {
	Repository

	listFn   func(ctx context.Context) ([]models.PaymentType, error)
	findFn   func(ctx context.Context, id uint) (*models.PaymentType, error)
	createFn func(ctx context.Context, pt *models.PaymentType) (*models.PaymentType, error)
	updateFn func(ctx context.Context, id uint, updates map[string]any) error
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubRepo) List(ctx context.Context) ([]models.PaymentType, error) {
	return s.listFn(ctx)
}

func (s *stubRepo) FindByID(ctx context.Context, id uint) (*models.PaymentType, error) {
	return s.findFn(ctx, id)
}

func (s *stubRepo) Create(ctx context.Context, pt *models.PaymentType) (*models.PaymentType, error) {
	return s.createFn(ctx, pt)
}

func (s *stubRepo) Update(ctx context.Context, id uint, updates map[string]any) error {
	return s.updateFn(ctx, id, updates)
}

func (s *stubRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func TestNewServiceRequiresRepo(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatalf("expected error for nil repository")
	}
}

func TestCreateTrimsAndPersists(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		createFn: func(_ context.Context, pt *models.PaymentType) (*models.PaymentType, error) {
			pt.ID = 3
			return pt, nil
		},
	}
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), "  GCash ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.ID != 3 || dto.Name != "GCash" {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	t.Parallel()

	svc, _ := NewService(&stubRepo{})

	_, err := svc.Create(context.Background(), "   ")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMapsNotFound(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		updateFn: func(context.Context, uint, map[string]any) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Update(context.Background(), 9, "Cash")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteWrapsDependencyError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	repo := &stubRepo{
		deleteFn: func(context.Context, uint) error { return boom },
	}
	svc, _ := NewService(repo)

	err := svc.Delete(context.Background(), 1)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause")
	}
}

func TestListReturnsAll(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{
		listFn: func(context.Context) ([]models.PaymentType, error) {
			return []models.PaymentType{{ID: 1, Name: "Cash"}, {ID: 2, Name: "Card"}}, nil
		},
	}
	svc, _ := NewService(repo)

	types, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(types) != 2 || types[0].Name != "Cash" || types[1].Name != "Card" {
		t.Fatalf("unexpected list %+v", types)
	}
}
