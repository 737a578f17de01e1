package ports

import (
	"context"

	"github.com/eventhub/account-service/internal/core/domain"
)

// AuditLog persists authentication events.
type AuditLog interface {
	Log(ctx context.Context, event domain.AuthEvent) error
	// Recent returns the newest events first.
	Recent(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}

// AuthEventSink accepts audit events without blocking the caller. Delivery is
// best-effort: events may be dropped under load.
type AuthEventSink interface {
	Record(event domain.AuthEvent)
}
