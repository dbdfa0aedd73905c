package paymenttypes

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvillaluz/tindera-backend/pkg/db"
	"github.com/mvillaluz/tindera-backend/pkg/db/models"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

// PaymentTypeDTO is the tender option payload returned to clients.
type PaymentTypeDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Service manages the tender options offered at checkout.
type Service interface {
	List(ctx context.Context) ([]PaymentTypeDTO, error)
	Get(ctx context.Context, id uint) (*PaymentTypeDTO, error)
	Create(ctx context.Context, name string) (*PaymentTypeDTO, error)
	Update(ctx context.Context, id uint, name string) (*PaymentTypeDTO, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService builds a payment type service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payment type repository required")
	}
	return &service{repo: repo}, nil
}

func toDTO(pt *models.PaymentType) PaymentTypeDTO {
	return PaymentTypeDTO{ID: pt.ID, Name: pt.Name}
}

func (s *service) List(ctx context.Context) ([]PaymentTypeDTO, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payment types")
	}
	out := make([]PaymentTypeDTO, len(types))
	for i := range types {
		out[i] = toDTO(&types[i])
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uint) (*PaymentTypeDTO, error) {
	pt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment type not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment type")
	}
	dto := toDTO(pt)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, name string) (*PaymentTypeDTO, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	pt, err := s.repo.Create(ctx, &models.PaymentType{Name: trimmed})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment type")
	}
	dto := toDTO(pt)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uint, name string) (*PaymentTypeDTO, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if err := s.repo.Update(ctx, id, map[string]any{"name": trimmed}); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment type not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update payment type")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "payment type not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete payment type")
	}
	return nil
}
