package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	txsvc "github.com/mvillaluz/tindera-backend/internal/transactions"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
	"github.com/mvillaluz/tindera-backend/pkg/pagination"
)

type stubTransactions struct {
	listFn func(ctx context.Context, params pagination.Params) ([]txsvc.TransactionDTO, pagination.Meta, error)
	getFn  func(ctx context.Context, id uint) (*txsvc.DetailDTO, error)
}

func (s *stubTransactions) List(ctx context.Context, params pagination.Params) ([]txsvc.TransactionDTO, pagination.Meta, error) {
	return s.listFn(ctx, params)
}

func (s *stubTransactions) Get(ctx context.Context, id uint) (*txsvc.DetailDTO, error) {
	return s.getFn(ctx, id)
}

func TestListTransactions(t *testing.T) {
	svc := &stubTransactions{
		listFn: func(ctx context.Context, params pagination.Params) ([]txsvc.TransactionDTO, pagination.Meta, error) {
			if params.Page != 2 || params.PageSize != 10 {
				t.Fatalf("unexpected params %+v", params)
			}
			return []txsvc.TransactionDTO{{ID: 9}}, pagination.NewMeta(params, 15), nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?page=2&page_size=10", nil)
	ListTransactions(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []txsvc.TransactionDTO `json:"data"`
		Meta pagination.Meta        `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != 9 {
		t.Fatalf("unexpected data %+v", envelope.Data)
	}
	if envelope.Meta.Page != 2 || envelope.Meta.TotalCount != 15 {
		t.Fatalf("unexpected meta %+v", envelope.Meta)
	}
}

func TestListTransactionsRejectsOversizedPage(t *testing.T) {
	svc := &stubTransactions{
		listFn: func(ctx context.Context, params pagination.Params) ([]txsvc.TransactionDTO, pagination.Meta, error) {
			t.Fatalf("service should not be called")
			return nil, pagination.Meta{}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?page_size=5000", nil)
	ListTransactions(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGetTransactionNotFound(t *testing.T) {
	svc := &stubTransactions{
		getFn: func(ctx context.Context, id uint) (*txsvc.DetailDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "transaction not found")
		},
	}

	rec := httptest.NewRecorder()
	req := pathRequest(http.MethodGet, "/api/v1/transactions/44", "transactionId", "44", nil)
	GetTransaction(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
