package domain

import "time"

// Decision is a moderator's verdict on a queued request or account.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ParseDecision accepts only "approve" and "reject".
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApprove, DecisionReject:
		return Decision(s), nil
	}
	return "", NewValidationError("action must be one of: approve, reject", "action")
}

// Status is the stored verification or request status for the decision.
func (d Decision) Status() string {
	if d == DecisionApprove {
		return VerificationApproved
	}
	return VerificationRejected
}

// Admin action types written to the admin_actions table.
const (
	AdminActionLogin               = "login"
	AdminActionQuickLogin          = "quick_login"
	AdminActionUserVerification    = "user_verification"
	AdminActionEventCancellation   = "event_cancellation"
	AdminActionAccountVerification = "account_verification"
)

// AdminAction is one row of the admin action log.
type AdminAction struct {
	AdminID  string
	Type     string
	TargetID string
	Details  string
	At       time.Time
}

// VerificationRequest is a queued request for account verification.
type VerificationRequest struct {
	ID                 string     `json:"verificationId"`
	UserID             string     `json:"userId"`
	UserType           string     `json:"userType"`
	DocumentsSubmitted string     `json:"documentsSubmitted,omitempty"`
	Status             string     `json:"status"`
	AdminNotes         string     `json:"adminNotes,omitempty"`
	ReviewedBy         string     `json:"reviewedBy,omitempty"`
	ReviewedAt         *time.Time `json:"reviewedAt,omitempty"`
	Email              string     `json:"email,omitempty"`
	Name               string     `json:"name,omitempty"`
}

// CancellationRequest is a queued request to cancel an event.
type CancellationRequest struct {
	ID             string     `json:"cancellationId"`
	EventID        string     `json:"eventId"`
	RequestedBy    string     `json:"requestedBy"`
	Reason         string     `json:"reason,omitempty"`
	Status         string     `json:"status"`
	RefundAmount   float64    `json:"refundAmount"`
	PenaltyAmount  float64    `json:"penaltyAmount"`
	AdminNotes     string     `json:"adminNotes,omitempty"`
	EventName      string     `json:"eventName,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	CustomerEmail  string     `json:"customerEmail,omitempty"`
	OrganizerEmail string     `json:"organizerEmail,omitempty"`
}

// CancellationDecision carries the moderator input for a cancellation.
type CancellationDecision struct {
	CancellationID string
	Decision       Decision
	AdminNotes     string
	RefundAmount   float64
	PenaltyAmount  float64
	AdminID        string
}

// UserSummary is one row of the admin user list.
type UserSummary struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	UserType   string    `json:"userType"`
	IsVerified bool      `json:"isVerified"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VenueComponents is the input for a venue insert. Every field is required.
type VenueComponents struct {
	BuildingName  string
	Floor         string
	ZipCode       string
	StreetAddress string
	District      string
	City          string
	Province      string
	Country       string
}

// VenueRef identifies the rows written for a venue.
type VenueRef struct {
	AddressID  int64
	BuildingID int64
}
