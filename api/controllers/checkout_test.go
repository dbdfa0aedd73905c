package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	checkoutsvc "github.com/mvillaluz/tindera-backend/internal/checkout"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

type stubCheckout struct {
	finalizeFn func(ctx context.Context, sessionID uuid.UUID, paymentTypeID *uint) (*checkoutsvc.ReceiptDTO, error)
}

func (s *stubCheckout) Finalize(ctx context.Context, sessionID uuid.UUID, paymentTypeID *uint) (*checkoutsvc.ReceiptDTO, error) {
	return s.finalizeFn(ctx, sessionID, paymentTypeID)
}

func TestCheckout(t *testing.T) {
	sessionID := uuid.New()
	svc := &stubCheckout{
		finalizeFn: func(ctx context.Context, got uuid.UUID, paymentTypeID *uint) (*checkoutsvc.ReceiptDTO, error) {
			if got != sessionID {
				t.Fatalf("expected session %s got %s", sessionID, got)
			}
			if paymentTypeID == nil || *paymentTypeID != 2 {
				t.Fatalf("expected payment type 2, got %v", paymentTypeID)
			}
			return &checkoutsvc.ReceiptDTO{
				TransactionID: 11,
				Date:          time.Now(),
				TotalQty:      3,
				TotalPrice:    decimal.RequireFromString("42.00"),
			}, nil
		},
	}

	body := []byte(`{"payment_type_id":2}`)
	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, sessionRequest(http.MethodPost, "/api/v1/checkout", sessionID, body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var envelope struct {
		Data checkoutsvc.ReceiptDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TransactionID != 11 {
		t.Fatalf("unexpected receipt %+v", envelope.Data)
	}
}

func TestCheckoutAllowsEmptyBody(t *testing.T) {
	sessionID := uuid.New()
	svc := &stubCheckout{
		finalizeFn: func(ctx context.Context, got uuid.UUID, paymentTypeID *uint) (*checkoutsvc.ReceiptDTO, error) {
			if paymentTypeID != nil {
				t.Fatalf("expected nil payment type, got %v", *paymentTypeID)
			}
			return &checkoutsvc.ReceiptDTO{TransactionID: 5}, nil
		},
	}

	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, sessionRequest(http.MethodPost, "/api/v1/checkout", sessionID, nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	sessionID := uuid.New()
	svc := &stubCheckout{
		finalizeFn: func(ctx context.Context, got uuid.UUID, paymentTypeID *uint) (*checkoutsvc.ReceiptDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
		},
	}

	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, sessionRequest(http.MethodPost, "/api/v1/checkout", sessionID, nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Message != "cart is empty" {
		t.Fatalf("expected public message, got %q", envelope.Error.Message)
	}
}

func TestCheckoutRequiresSession(t *testing.T) {
	svc := &stubCheckout{
		finalizeFn: func(ctx context.Context, sessionID uuid.UUID, paymentTypeID *uint) (*checkoutsvc.ReceiptDTO, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	Checkout(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
