package ports

import (
	"context"

	"github.com/eventhub/account-service/internal/core/domain"
)

// RequestMeta carries request attributes recorded in the audit trail.
type RequestMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

// RegisterInput carries one registration. Profile fields that do not apply to
// the variant are ignored.
type RegisterInput struct {
	Variant     domain.Variant
	IdentityKey string
	Email       string
	Password    string
	Subtype     string
	Profile     domain.Profile
}

// RegistrationService creates accounts.
type RegistrationService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
}

// IdentityQuery identifies an account by identity key, email or both.
type IdentityQuery struct {
	IdentityKey string
	Email       string
}

// IdentityResolver maps external identities to accounts.
type IdentityResolver interface {
	// Resolve searches the variants in domain.ResolutionOrder and returns the
	// first account matching the key or the email.
	Resolve(ctx context.Context, q IdentityQuery) (*domain.Account, error)
	// ResolveRoleID returns the role id of the account holding key.
	ResolveRoleID(ctx context.Context, key string) (string, error)
}

// LoginInput carries a password login attempt.
type LoginInput struct {
	Email    string
	Password string
	Meta     RequestMeta
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token   string
	Session *domain.Session
	Account *domain.Account
}

// AuthService authenticates accounts and manages their sessions.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, session *domain.Session, meta RequestMeta) error
	// CurrentSession re-resolves the account behind a session.
	CurrentSession(ctx context.Context, session *domain.Session) (*domain.Session, error)
}

// SyncInput carries an identity-provider sign-in to mirror locally.
type SyncInput struct {
	IdentityKey string
	Email       string
	UserType    string
	VendorType  string
}

// SyncResult reports the account id and whether a placeholder was created.
type SyncResult struct {
	UserID  string
	Created bool
}

// SyncService mirrors identity-provider accounts idempotently.
type SyncService interface {
	Sync(ctx context.Context, in SyncInput) (*SyncResult, error)
}

// AdminLoginResult is returned by super admin logins.
type AdminLoginResult struct {
	Admin *domain.SuperAdmin
	Token string
}

// AdminAuthService authenticates super admins.
type AdminAuthService interface {
	Login(ctx context.Context, email, password string, meta RequestMeta) (*AdminLoginResult, error)
	QuickLogin(ctx context.Context, meta RequestMeta) (*AdminLoginResult, error)
}

// HandleVerificationInput resolves one verification request.
type HandleVerificationInput struct {
	AdminID        string
	VerificationID string
	Action         string
	AdminNotes     string
}

// HandleCancellationInput resolves one cancellation request.
type HandleCancellationInput struct {
	AdminID        string
	CancellationID string
	Action         string
	AdminNotes     string
	RefundAmount   float64
	PenaltyAmount  float64
}

// VerifyUserInput sets the moderation state of one account.
type VerifyUserInput struct {
	AdminID string
	UserID  string
	Action  string
}

// ModerationService backs the super admin console.
type ModerationService interface {
	ListVerificationRequests(ctx context.Context) ([]domain.VerificationRequest, error)
	HandleVerification(ctx context.Context, in HandleVerificationInput) error
	ListCancellationRequests(ctx context.Context) ([]domain.CancellationRequest, error)
	HandleCancellation(ctx context.Context, in HandleCancellationInput) error
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	VerifyUser(ctx context.Context, in VerifyUserInput) (domain.Variant, error)
	RecentAuthEvents(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}

// VenueService inserts venue components.
type VenueService interface {
	InsertComponents(ctx context.Context, v domain.VenueComponents) (domain.VenueRef, error)
}

// CreateEventInput carries a new event booking. Dates are YYYY-MM-DD and the
// optional times HH:MM or HH:MM:SS. Nil numeric fields were not supplied.
type CreateEventInput struct {
	Name        string
	Overview    string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
	Guests      *int
	Budget      *float64
	EventTypeID *int64
	Attire      string
	Services    []string
	CustomerID  string
	OrganizerID string
	VenueID     *int64
}

// BookingService creates and lists customer events.
type BookingService interface {
	EventTypes(ctx context.Context) ([]domain.EventType, error)
	// CustomerEvents returns domain.ErrAccountNotFound for unknown customers.
	CustomerEvents(ctx context.Context, customerID string) ([]domain.Event, error)
	CreateEvent(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	Bookings(ctx context.Context) (domain.BookingBoard, error)
}
