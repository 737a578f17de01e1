package ports

import (
	"context"

	"github.com/eventhub/account-service/internal/core/domain"
)

// SessionStore keeps issued sessions until they expire or are revoked.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenVerifier turns a presented bearer token into its live session.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Session, error)
}
