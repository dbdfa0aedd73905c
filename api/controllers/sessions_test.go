package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

type stubIssuer struct {
	token  string
	err    error
	issued uuid.UUID
}

func (s *stubIssuer) Issue(sessionID uuid.UUID) (string, error) {
	s.issued = sessionID
	return s.token, s.err
}

func TestOpenSession(t *testing.T) {
	issuer := &stubIssuer{token: "signed-token"}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	OpenSession(issuer, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var envelope struct {
		Data sessionResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Token != "signed-token" {
		t.Fatalf("unexpected token %q", envelope.Data.Token)
	}
	if envelope.Data.SessionID != issuer.issued.String() {
		t.Fatalf("session id mismatch: %q vs %q", envelope.Data.SessionID, issuer.issued)
	}
	if issuer.issued == uuid.Nil {
		t.Fatalf("expected a freshly minted session id")
	}
}

func TestOpenSessionIssuerFailure(t *testing.T) {
	issuer := &stubIssuer{err: pkgerrors.New(pkgerrors.CodeInternal, "signing failed")}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	OpenSession(issuer, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
