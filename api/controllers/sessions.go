package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mvillaluz/tindera-backend/api/responses"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
	"github.com/mvillaluz/tindera-backend/pkg/logger"
)

type sessionIssuer interface {
	Issue(sessionID uuid.UUID) (string, error)
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// OpenSession mints a fresh terminal session and its bearer token. Each
// session owns an isolated cart.
func OpenSession(issuer sessionIssuer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if issuer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		sessionID := uuid.New()
		token, err := issuer.Issue(sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionResponse{
			SessionID: sessionID.String(),
			Token:     token,
		})
	}
}
