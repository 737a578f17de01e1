package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextKeySession = "session"
	ContextKeyRole    = "role"
	ContextKeyToken   = "token"
)

// Auth verifies the bearer token against the live session store and injects
// the session into the echo context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			token := strings.TrimSpace(parts[1])
			session, err := verifier.Verify(c.Request().Context(), token)
			if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			// Session store faults reach the error handler as 500s.
			if err != nil {
				return err
			}

			c.Set(ContextKeySession, session)
			c.Set(ContextKeyRole, session.Role)
			c.Set(ContextKeyToken, token)

			return next(c)
		}
	}
}
