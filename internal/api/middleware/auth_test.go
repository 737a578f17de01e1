package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/core/domain"
)

type stubVerifier struct {
	sessions map[string]*domain.Session
}

func (v stubVerifier) Verify(_ context.Context, token string) (*domain.Session, error) {
	s, ok := v.sessions[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

func newVerifier() stubVerifier {
	return stubVerifier{sessions: map[string]*domain.Session{
		"good": {ID: "s1", IdentityKey: "uid-1", Variant: domain.VariantVendor, Role: "vendor"},
	}}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(newVerifier())(func(c echo.Context) error {
		called = true
		session, ok := c.Get(ContextKeySession).(*domain.Session)
		if !ok || session.IdentityKey != "uid-1" {
			t.Fatalf("session not set: %v", c.Get(ContextKeySession))
		}
		if c.Get(ContextKeyRole) != "vendor" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic good"},
		{name: "empty token", header: "Bearer "},
		{name: "unknown token", header: "Bearer revoked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			err := Auth(newVerifier())(func(c echo.Context) error {
				t.Fatal("next should not be called")
				return nil
			})(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
		})
	}
}

type faultyVerifier struct{ err error }

func (v faultyVerifier) Verify(context.Context, string) (*domain.Session, error) {
	return nil, v.err
}

func TestAuthMiddleware_StoreFaultIsNotUnauthorized(t *testing.T) {
	storeErr := fmt.Errorf("verify token: %w", errors.New("redis: connection refused"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(faultyVerifier{err: storeErr})(func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})(c)

	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store fault must not become an HTTPError, got %d", he.Code)
	}
}

func TestAuthMiddleware_RevokedSessionIsUnauthorized(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(faultyVerifier{err: domain.ErrSessionNotFound})(func(c echo.Context) error {
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
