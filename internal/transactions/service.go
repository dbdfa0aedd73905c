package transactions

import (
	"context"
	"fmt"

	"github.com/mvillaluz/tindera-backend/pkg/db"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
	"github.com/mvillaluz/tindera-backend/pkg/pagination"
)

// Service exposes the read-only sales history.
type Service interface {
	List(ctx context.Context, params pagination.Params) ([]TransactionDTO, pagination.Meta, error)
	Get(ctx context.Context, id uint) (*DetailDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a transaction history service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("transactions repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) ([]TransactionDTO, pagination.Meta, error) {
	txns, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}
	out := make([]TransactionDTO, len(txns))
	for i := range txns {
		out[i] = NewTransactionDTO(&txns[i])
	}
	return out, pagination.NewMeta(params, total), nil
}

func (s *service) Get(ctx context.Context, id uint) (*DetailDTO, error) {
	txn, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "transaction not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load transaction")
	}
	return NewDetailDTO(txn), nil
}
