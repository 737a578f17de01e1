package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
	"github.com/eventhub/account-service/internal/pkg/sanitize"
)

type moderationService struct {
	accounts ports.AccountRepository
	resolver ports.IdentityResolver
	queue    ports.ModerationRepository
	actions  ports.AdminActionRepository
	audit    ports.AuditLog
	log      zerolog.Logger
	now      func() time.Time
}

// NewModerationService returns a ModerationService implementation.
func NewModerationService(
	accounts ports.AccountRepository,
	resolver ports.IdentityResolver,
	queue ports.ModerationRepository,
	actions ports.AdminActionRepository,
	audit ports.AuditLog,
	log zerolog.Logger,
) ports.ModerationService {
	return &moderationService{
		accounts: accounts,
		resolver: resolver,
		queue:    queue,
		actions:  actions,
		audit:    audit,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *moderationService) ListVerificationRequests(ctx context.Context) ([]domain.VerificationRequest, error) {
	reqs, err := s.queue.ListVerificationRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list verification requests: %w", err)
	}
	return reqs, nil
}

func (s *moderationService) HandleVerification(ctx context.Context, in ports.HandleVerificationInput) error {
	decision, err := domain.ParseDecision(strings.TrimSpace(in.Action))
	if err != nil {
		return err
	}
	id := strings.TrimSpace(in.VerificationID)
	if id == "" {
		return domain.MissingFields("verificationId")
	}

	if err := s.queue.ResolveVerificationRequest(ctx, id, decision, sanitize.Text(in.AdminNotes), in.AdminID); err != nil {
		if errors.Is(err, domain.ErrVerificationRequestNotFound) {
			return err
		}
		return fmt.Errorf("handle verification: %w", err)
	}

	s.recordAction(ctx, domain.AdminAction{
		AdminID:  in.AdminID,
		Type:     domain.AdminActionUserVerification,
		TargetID: id,
		Details:  "User verification " + decision.Status(),
	})
	return nil
}

func (s *moderationService) ListCancellationRequests(ctx context.Context) ([]domain.CancellationRequest, error) {
	reqs, err := s.queue.ListPendingCancellations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cancellation requests: %w", err)
	}
	return reqs, nil
}

// HandleCancellation records the decision and, on approval, cancels the event
// in the same transaction.
func (s *moderationService) HandleCancellation(ctx context.Context, in ports.HandleCancellationInput) error {
	decision, err := domain.ParseDecision(strings.TrimSpace(in.Action))
	if err != nil {
		return err
	}
	id := strings.TrimSpace(in.CancellationID)
	if id == "" {
		return domain.MissingFields("cancellationId")
	}
	if in.RefundAmount < 0 || in.PenaltyAmount < 0 {
		return domain.NewValidationError("amounts must not be negative", "refundAmount", "penaltyAmount")
	}

	err = s.queue.ResolveCancellation(ctx, domain.CancellationDecision{
		CancellationID: id,
		Decision:       decision,
		AdminNotes:     sanitize.Text(in.AdminNotes),
		RefundAmount:   in.RefundAmount,
		PenaltyAmount:  in.PenaltyAmount,
		AdminID:        in.AdminID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCancellationRequestNotFound) {
			return err
		}
		return fmt.Errorf("handle cancellation: %w", err)
	}

	s.recordAction(ctx, domain.AdminAction{
		AdminID:  in.AdminID,
		Type:     domain.AdminActionEventCancellation,
		TargetID: id,
		Details:  "Event cancellation " + decision.Status(),
	})
	return nil
}

func (s *moderationService) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// VerifyUser finds the variant that owns the user id and updates only that
// table. It returns the variant that was updated.
func (s *moderationService) VerifyUser(ctx context.Context, in ports.VerifyUserInput) (domain.Variant, error) {
	decision, err := domain.ParseDecision(strings.TrimSpace(in.Action))
	if err != nil {
		return "", err
	}
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return "", domain.MissingFields("userId")
	}

	acc, err := s.resolver.Resolve(ctx, ports.IdentityQuery{IdentityKey: userID})
	if err != nil {
		return "", err
	}

	now := s.now()
	err = s.accounts.SetVerification(ctx, acc.Variant, acc.IdentityKey, domain.Verification{
		IsVerified: decision == domain.DecisionApprove,
		Status:     decision.Status(),
		VerifiedAt: &now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", err
		}
		return "", fmt.Errorf("verify user: %w", err)
	}

	s.recordAction(ctx, domain.AdminAction{
		AdminID:  in.AdminID,
		Type:     domain.AdminActionAccountVerification,
		TargetID: userID,
		Details:  fmt.Sprintf("%s account %s", acc.Variant, decision.Status()),
	})
	return acc.Variant, nil
}

func (s *moderationService) RecentAuthEvents(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	events, err := s.audit.Recent(ctx, domain.ClampAuditLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent auth events: %w", err)
	}
	return events, nil
}

// recordAction writes to the admin action log. Failures are logged only.
func (s *moderationService) recordAction(ctx context.Context, action domain.AdminAction) {
	action.At = s.now()
	if err := s.actions.Record(ctx, action); err != nil {
		s.log.Warn().Err(err).
			Str("admin_id", action.AdminID).
			Str("action", action.Type).
			Msg("failed to record admin action")
		return
	}
	s.log.Info().
		Str("admin_id", action.AdminID).
		Str("action", action.Type).
		Str("target", action.TargetID).
		Msg("moderation action applied")
}
