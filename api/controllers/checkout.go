package controllers

import (
	"net/http"

	"github.com/mvillaluz/tindera-backend/api/responses"
	"github.com/mvillaluz/tindera-backend/api/validators"
	checkoutsvc "github.com/mvillaluz/tindera-backend/internal/checkout"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
	"github.com/mvillaluz/tindera-backend/pkg/logger"
)

type checkoutRequest struct {
	PaymentTypeID *uint `json:"payment_type_id,omitempty" validate:"omitempty,min=1"`
}

// Checkout finalizes the session's cart into a stored transaction.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// The body is optional; an empty POST finalizes without a tender.
		var payload checkoutRequest
		if r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		receipt, err := svc.Finalize(r.Context(), sessionID, payload.PaymentTypeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
