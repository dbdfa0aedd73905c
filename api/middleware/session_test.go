package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

type stubVerifier struct {
	sessionID uuid.UUID
	err       error
	lastToken string
}

func (s *stubVerifier) Verify(token string) (uuid.UUID, error) {
	s.lastToken = token
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return s.sessionID, nil
}

func TestSessionAuthInjectsSessionID(t *testing.T) {
	sessionID := uuid.New()
	verifier := &stubVerifier{sessionID: sessionID}

	var seen uuid.UUID
	handler := SessionAuth(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if verifier.lastToken != "some-token" {
		t.Fatalf("expected token passthrough, got %q", verifier.lastToken)
	}
	if seen != sessionID {
		t.Fatalf("expected session %s in context, got %s", sessionID, seen)
	}
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	handler := SessionAuth(&stubVerifier{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run without a token")
	}))

	for _, header := range []string{"", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 got %d", header, rec.Code)
		}
	}
}

func TestSessionAuthRejectsInvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session token")}
	handler := SessionAuth(verifier, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run for invalid tokens")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
