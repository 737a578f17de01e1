package ports

import (
	"context"

	"github.com/eventhub/account-service/internal/core/domain"
)

// ModerationRepository reads and resolves the verification and cancellation queues.
type ModerationRepository interface {
	ListVerificationRequests(ctx context.Context) ([]domain.VerificationRequest, error)
	// ResolveVerificationRequest returns domain.ErrVerificationRequestNotFound for unknown ids.
	ResolveVerificationRequest(ctx context.Context, id string, decision domain.Decision, notes, adminID string) error
	ListPendingCancellations(ctx context.Context) ([]domain.CancellationRequest, error)
	// ResolveCancellation updates the request and, on approval, cancels the
	// event in the same transaction.
	ResolveCancellation(ctx context.Context, in domain.CancellationDecision) error
}

// VenueRepository writes venue components as one unit.
type VenueRepository interface {
	InsertComponents(ctx context.Context, v domain.VenueComponents) (domain.VenueRef, error)
}
