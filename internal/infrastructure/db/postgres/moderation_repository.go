package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eventhub/account-service/internal/core/domain"
)

// ModerationRepository serves the verification and cancellation queues.
type ModerationRepository struct {
	db *sqlx.DB
}

func NewModerationRepository(db *sqlx.DB) *ModerationRepository {
	return &ModerationRepository{db: db}
}

// parseID reads a numeric queue id. ok is false for anything that cannot be
// a row id, which callers report as not found.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type verificationRow struct {
	ID                 int64          `db:"verification_id"`
	UserID             string         `db:"user_id"`
	UserType           string         `db:"user_type"`
	DocumentsSubmitted sql.NullString `db:"documents_submitted"`
	Status             string         `db:"status"`
	AdminNotes         sql.NullString `db:"admin_notes"`
	ReviewedBy         sql.NullString `db:"reviewed_by"`
	ReviewedAt         sql.NullTime   `db:"reviewed_at"`
	Email              sql.NullString `db:"email"`
	Name               sql.NullString `db:"name"`
}

const listVerificationsQuery = `
SELECT
  uvr.verification_id,
  uvr.user_id,
  uvr.user_type,
  uvr.documents_submitted,
  uvr.status,
  uvr.admin_notes,
  uvr.reviewed_by,
  uvr.reviewed_at,
  CASE
    WHEN uvr.user_type = 'individual' THEN cad.customer_email
    WHEN uvr.user_type = 'vendor' THEN vad.vendor_email
    WHEN uvr.user_type = 'organizer' THEN eoad.organizer_email
  END AS email,
  CASE
    WHEN uvr.user_type = 'individual' THEN TRIM(CONCAT(cad.customer_first_name, ' ', cad.customer_last_name))
    WHEN uvr.user_type = 'vendor' THEN vad.vendor_business_name
    WHEN uvr.user_type = 'organizer' THEN eoad.organizer_company_name
  END AS name
FROM user_verification_requests uvr
LEFT JOIN customer_account_data cad ON uvr.user_id = cad.customer_id AND uvr.user_type = 'individual'
LEFT JOIN vendor_account_data vad ON uvr.user_id = vad.vendor_id AND uvr.user_type = 'vendor'
LEFT JOIN event_organizer_account_data eoad ON uvr.user_id = eoad.organizer_id AND uvr.user_type = 'organizer'
ORDER BY uvr.reviewed_at DESC NULLS FIRST, uvr.verification_id`

// ListVerificationRequests returns every request, unreviewed ones first.
func (r *ModerationRepository) ListVerificationRequests(ctx context.Context) ([]domain.VerificationRequest, error) {
	var rows []verificationRow
	if err := r.db.SelectContext(ctx, &rows, listVerificationsQuery); err != nil {
		return nil, fmt.Errorf("list verification requests: %w", err)
	}
	out := make([]domain.VerificationRequest, 0, len(rows))
	for _, row := range rows {
		req := domain.VerificationRequest{
			ID:                 strconv.FormatInt(row.ID, 10),
			UserID:             row.UserID,
			UserType:           row.UserType,
			DocumentsSubmitted: row.DocumentsSubmitted.String,
			Status:             row.Status,
			AdminNotes:         row.AdminNotes.String,
			ReviewedBy:         row.ReviewedBy.String,
			Email:              row.Email.String,
			Name:               row.Name.String,
		}
		if row.ReviewedAt.Valid {
			at := row.ReviewedAt.Time
			req.ReviewedAt = &at
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *ModerationRepository) ResolveVerificationRequest(ctx context.Context, id string, d domain.Decision, notes, adminID string) error {
	vid, ok := parseID(id)
	if !ok {
		return domain.ErrVerificationRequestNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_verification_requests
		 SET status = $1, reviewed_by = $2, reviewed_at = $3, admin_notes = $4
		 WHERE verification_id = $5`,
		d.Status(), adminID, time.Now().UTC(), notes, vid)
	if err != nil {
		return fmt.Errorf("resolve verification request: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("resolve verification request: %w", err)
	} else if n == 0 {
		return domain.ErrVerificationRequestNotFound
	}
	return nil
}

type cancellationRow struct {
	ID             int64          `db:"cancellation_id"`
	EventID        int64          `db:"event_id"`
	RequestedBy    string         `db:"requested_by"`
	Reason         sql.NullString `db:"reason"`
	Status         string         `db:"status"`
	RefundAmount   float64        `db:"refund_amount"`
	PenaltyAmount  float64        `db:"penalty_amount"`
	AdminNotes     sql.NullString `db:"admin_notes"`
	EventName      string         `db:"event_name"`
	StartDate      sql.NullTime   `db:"start_date"`
	EndDate        sql.NullTime   `db:"end_date"`
	CustomerEmail  sql.NullString `db:"customer_email"`
	OrganizerEmail sql.NullString `db:"organizer_email"`
}

const listCancellationsQuery = `
SELECT
  ecr.cancellation_id,
  ecr.event_id,
  ecr.requested_by,
  ecr.reason,
  ecr.status,
  ecr.refund_amount::float8 AS refund_amount,
  ecr.penalty_amount::float8 AS penalty_amount,
  ecr.admin_notes,
  e.event_name,
  e.start_date,
  e.end_date,
  cad.customer_email AS customer_email,
  eoad.organizer_email AS organizer_email
FROM event_cancellation_requests ecr
JOIN events e ON ecr.event_id = e.event_id
LEFT JOIN customer_account_data cad ON e.customer_id = cad.customer_id
LEFT JOIN event_organizer_account_data eoad ON e.organizer_id = eoad.organizer_id
WHERE ecr.status = 'pending'
ORDER BY ecr.cancellation_id DESC`

func (r *ModerationRepository) ListPendingCancellations(ctx context.Context) ([]domain.CancellationRequest, error) {
	var rows []cancellationRow
	if err := r.db.SelectContext(ctx, &rows, listCancellationsQuery); err != nil {
		return nil, fmt.Errorf("list cancellation requests: %w", err)
	}
	out := make([]domain.CancellationRequest, 0, len(rows))
	for _, row := range rows {
		req := domain.CancellationRequest{
			ID:             strconv.FormatInt(row.ID, 10),
			EventID:        strconv.FormatInt(row.EventID, 10),
			RequestedBy:    row.RequestedBy,
			Reason:         row.Reason.String,
			Status:         row.Status,
			RefundAmount:   row.RefundAmount,
			PenaltyAmount:  row.PenaltyAmount,
			AdminNotes:     row.AdminNotes.String,
			EventName:      row.EventName,
			CustomerEmail:  row.CustomerEmail.String,
			OrganizerEmail: row.OrganizerEmail.String,
		}
		if row.StartDate.Valid {
			at := row.StartDate.Time
			req.StartDate = &at
		}
		if row.EndDate.Valid {
			at := row.EndDate.Time
			req.EndDate = &at
		}
		out = append(out, req)
	}
	return out, nil
}

// ResolveCancellation updates the request and, when approved, marks the event
// cancelled. Both writes share one transaction.
func (r *ModerationRepository) ResolveCancellation(ctx context.Context, in domain.CancellationDecision) error {
	cid, ok := parseID(in.CancellationID)
	if !ok {
		return domain.ErrCancellationRequestNotFound
	}
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var eventID int64
		err := tx.GetContext(ctx, &eventID,
			`UPDATE event_cancellation_requests
			 SET status = $1, admin_notes = $2, refund_amount = $3, penalty_amount = $4
			 WHERE cancellation_id = $5
			 RETURNING event_id`,
			in.Decision.Status(), in.AdminNotes, in.RefundAmount, in.PenaltyAmount, cid)
		if err != nil {
			if err = translateError(err, domain.ErrCancellationRequestNotFound); errors.Is(err, domain.ErrCancellationRequestNotFound) {
				return err
			}
			return fmt.Errorf("resolve cancellation request: %w", err)
		}

		if in.Decision != domain.DecisionApprove {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE events SET event_status = 'cancelled' WHERE event_id = $1`, eventID); err != nil {
			return fmt.Errorf("cancel event %d: %w", eventID, err)
		}
		return nil
	})
}
