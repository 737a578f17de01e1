package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/middleware"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// ctxSession returns the session injected by the Auth middleware. A missing
// session means the route was registered without Auth: reject with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.ContextKeySession).(*domain.Session)
	if session == nil || session.IdentityKey == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}

// requestMeta collects the request attributes recorded in the audit trail.
func requestMeta(c echo.Context) ports.RequestMeta {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}
	return ports.RequestMeta{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		RequestID: requestID,
	}
}

// bind decodes the body into req and runs the registered validator.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
