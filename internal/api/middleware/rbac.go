package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/core/domain"
)

// RBAC admits requests whose session role is one of roles. It must run after
// Auth. A request without a session is rejected with 401; a session with any
// other role yields domain.ErrForbidden for the error handler to render.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := c.Get(ContextKeySession).(*domain.Session)
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !slices.Contains(roles, session.Role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
