package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventhub/account-service/internal/core/domain"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	store := newStubSessionStore()
	issuer := NewTokenIssuer("secret", time.Hour, store)

	s := &domain.Session{IdentityKey: "u1", Variant: domain.VariantCustomer, Role: "customer", UserType: "student"}
	token, err := issuer.Issue(context.Background(), s)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if s.ID == "" || s.ExpiresAt.Sub(s.IssuedAt) != time.Hour {
		t.Fatalf("session not stamped: %+v", s)
	}

	got, err := issuer.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if got.ID != s.ID || got.IdentityKey != "u1" {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	store := newStubSessionStore()
	token, _ := NewTokenIssuer("secret", time.Hour, store).Issue(context.Background(), &domain.Session{IdentityKey: "u1"})

	if _, err := NewTokenIssuer("other", time.Hour, store).Verify(context.Background(), token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	store := newStubSessionStore()
	issuer := NewTokenIssuer("secret", time.Minute, store)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.Issue(context.Background(), &domain.Session{IdentityKey: "u1"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	issuer.now = time.Now
	if _, err := issuer.Verify(context.Background(), token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour, newStubSessionStore())
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"jti": "x", "sub": "u1"})
	signed, _ := token.SignedString([]byte("secret"))

	if _, err := issuer.Verify(context.Background(), signed); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenIssuer_RejectsUnknownSession(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour, newStubSessionStore())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": "never-issued",
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("secret"))

	if _, err := issuer.Verify(context.Background(), signed); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTokenIssuer_SaveFailure(t *testing.T) {
	store := newStubSessionStore()
	store.saveErr = errors.New("redis down")
	issuer := NewTokenIssuer("secret", time.Hour, store)

	if _, err := issuer.Issue(context.Background(), &domain.Session{IdentityKey: "u1"}); err == nil {
		t.Fatalf("expected error when the session cannot be stored")
	}
}
