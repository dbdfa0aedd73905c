package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const ctxSessionID contextKey = "session_id"

// SessionIDFromContext returns the authenticated terminal session id, or
// uuid.Nil when the request carries none.
func SessionIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxSessionID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// WithSessionID injects the session identifier into the context.
func WithSessionID(ctx context.Context, sessionID uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}
