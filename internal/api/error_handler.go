package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to status codes and renders {"success": false, "message": "..."}.
// Unexpected errors are logged and rendered as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

// sentinelStatus lists the domain errors with a fixed status and message.
var sentinelStatus = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrRoleNotFound, http.StatusBadRequest, "role not found"},
	{domain.ErrEmailTaken, http.StatusConflict, "Email already registered."},
	{domain.ErrIdentityTaken, http.StatusConflict, "account already exists"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password."},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrSessionNotFound, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrAccountNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrAdminNotFound, http.StatusNotFound, "super admin account not found"},
	{domain.ErrQuickLoginDisabled, http.StatusNotFound, "not found"},
	{domain.ErrVerificationRequestNotFound, http.StatusNotFound, "verification request not found"},
	{domain.ErrCancellationRequestNotFound, http.StatusNotFound, "cancellation request not found"},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest, err.Error()
	}
	for _, s := range sentinelStatus {
		if errors.Is(err, s.err) {
			return s.code, s.msg
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
