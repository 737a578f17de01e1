package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/segmentio/ksuid"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// TokenIssuer issues HS256 tokens backed by a stored session. A token is
// honoured only while its session exists, so deleting the session revokes it.
type TokenIssuer struct {
	secret   []byte
	ttl      time.Duration
	sessions ports.SessionStore
	now      func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration, sessions ports.SessionStore) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Issue assigns the session an id and lifetime, stores it and returns the
// signed token.
func (t *TokenIssuer) Issue(ctx context.Context, s *domain.Session) (string, error) {
	now := t.now()
	s.ID = ksuid.New().String()
	s.IssuedAt = now
	s.ExpiresAt = now.Add(t.ttl)

	if err := t.sessions.Save(ctx, s); err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	claims := jwt.MapClaims{
		"jti":       s.ID,
		"sub":       s.IdentityKey,
		"role":      s.Role,
		"user_type": s.UserType,
		"iat":       now.Unix(),
		"exp":       s.ExpiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and that the session is still live.
// Every rejection is domain.ErrUnauthorized; store faults are returned wrapped.
func (t *TokenIssuer) Verify(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	id, _ := claims["jti"].(string)
	sub, _ := claims["sub"].(string)
	if id == "" || sub == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := t.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if session.IdentityKey != sub || session.Expired(t.now()) {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// Revoke deletes the session behind a token.
func (t *TokenIssuer) Revoke(ctx context.Context, sessionID string) error {
	if err := t.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
