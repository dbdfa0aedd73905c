package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mvillaluz/tindera-backend/pkg/config"
	pkgerrors "github.com/mvillaluz/tindera-backend/pkg/errors"
)

// Manager mints and verifies terminal session tokens. Each token carries the
// cart session id in its subject claim.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewManager(cfg config.SessionConfig) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	ttl := cfg.TTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// Issue signs a token for the given session id.
func (m *Manager) Issue(sessionID uuid.UUID) (string, error) {
	if sessionID == uuid.Nil {
		return "", fmt.Errorf("session id is required")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID.String(),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns the embedded session id.
func (m *Manager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session token")
	}
	if !token.Valid {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session token")
	}
	sessionID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session id")
	}
	return sessionID, nil
}
