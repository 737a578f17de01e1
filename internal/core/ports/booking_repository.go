package ports

import (
	"context"

	"github.com/eventhub/account-service/internal/core/domain"
)

// BookingRepository stores customer events and the event type catalogue.
type BookingRepository interface {
	ListEventTypes(ctx context.Context) ([]domain.EventType, error)
	// ListByCustomer returns the customer's events, newest start date first.
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Event, error)
	// Create inserts e and fills in the id and column defaults.
	Create(ctx context.Context, e *domain.Event) error
	// ListByStatus returns events whose status matches one of statuses
	// case-insensitively, newest start first.
	ListByStatus(ctx context.Context, statuses []string) ([]domain.Event, error)
}
