package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation                  = errors.New("validation failed")
	ErrEmailTaken                  = errors.New("email already registered")
	ErrIdentityTaken               = errors.New("account already exists")
	ErrRoleNotFound                = errors.New("role not found")
	ErrAccountNotFound             = errors.New("user not found")
	ErrPasswordMismatch            = errors.New("password mismatch")
	ErrInvalidCredentials          = errors.New("invalid email or password")
	ErrUnauthorized                = errors.New("unauthorized")
	ErrForbidden                   = errors.New("access forbidden")
	ErrSessionNotFound             = errors.New("session not found")
	ErrAdminNotFound               = errors.New("super admin account not found")
	ErrQuickLoginDisabled          = errors.New("quick login disabled")
	ErrVerificationRequestNotFound = errors.New("verification request not found")
	ErrCancellationRequestNotFound = errors.New("cancellation request not found")
)

// ValidationError names the fields that failed validation. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields  []string
	Message string
}

// NewValidationError builds a ValidationError. When msg is empty the message
// lists the offending fields.
func NewValidationError(msg string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: msg}
}

// MissingFields returns a ValidationError for the given empty required fields.
func MissingFields(fields ...string) *ValidationError {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return &ValidationError{
		Fields:  sorted,
		Message: "missing required fields: " + strings.Join(sorted, ", "),
	}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
