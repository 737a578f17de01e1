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
)

// errNoPassword marks a matched account that has no password hash, such as a
// sync placeholder. It never leaves this package.
var errNoPassword = errors.New("account has no password")

// AuthService implements password login across the account variants and the
// session lifecycle that follows it.
type AuthService struct {
	accounts   ports.AccountRepository
	hasher     PasswordHasher
	tokens     *TokenIssuer
	audit      ports.AuthEventSink
	log        zerolog.Logger
	timingHash string
	now        func() time.Time
}

func NewAuthService(
	accounts ports.AccountRepository,
	hasher PasswordHasher,
	tokens *TokenIssuer,
	audit ports.AuthEventSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts:   accounts,
		hasher:     hasher,
		tokens:     tokens,
		audit:      audit,
		log:        log,
		timingHash: timingHash(hasher),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Login searches the variants by email in resolution order. The first table
// holding the email decides the outcome: later tables are not consulted even
// when the password does not match. Unknown email, wrong password and a
// missing password are told apart in the audit trail and collapsed into
// domain.ErrInvalidCredentials for the caller.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		var missing []string
		if email == "" {
			missing = append(missing, "email")
		}
		if in.Password == "" {
			missing = append(missing, "password")
		}
		return nil, domain.MissingFields(missing...)
	}

	acc, err := s.authenticate(ctx, email, in.Password)
	if err != nil {
		event := domain.AuthEvent{Email: email}
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			event.Type = domain.AuthEventUserNotFound
		case errors.Is(err, domain.ErrPasswordMismatch):
			event.Type = domain.AuthEventWrongPassword
		case errors.Is(err, errNoPassword):
			event.Type = domain.AuthEventNoPassword
		default:
			return nil, fmt.Errorf("login: %w", err)
		}
		if acc != nil {
			event.IdentityKey = acc.IdentityKey
			event.Variant = acc.Variant
		}
		s.record(event, in.Meta)
		s.log.Debug().Str("email", email).Str("reason", event.Type).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		IdentityKey: acc.IdentityKey,
		Variant:     acc.Variant,
		Role:        acc.Variant.RoleName(),
		UserType:    acc.UserType(),
		RoleID:      acc.RoleID,
	}
	token, err := s.tokens.Issue(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.record(domain.AuthEvent{
		Type:        domain.AuthEventLoginSuccess,
		IdentityKey: acc.IdentityKey,
		Variant:     acc.Variant,
		Email:       acc.Email,
		Success:     true,
	}, in.Meta)

	s.log.Info().
		Str("identity_key", acc.IdentityKey).
		Str("variant", string(acc.Variant)).
		Msg("login succeeded")

	acc.PasswordHash = ""
	return &ports.LoginResult{Token: token, Session: session, Account: acc}, nil
}

// authenticate returns the matched account alongside errNoPassword and
// domain.ErrPasswordMismatch so the caller can attribute the failure.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	acc, err := firstInOrder(ctx, domain.ResolutionOrder, func(ctx context.Context, v domain.Variant) (*domain.Account, error) {
		return s.accounts.FindByEmail(ctx, v, email)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) && s.timingHash != "" {
			_ = s.hasher.Compare(s.timingHash, password)
		}
		return nil, err
	}

	if !acc.HasPassword() {
		return acc, errNoPassword
	}
	if err := s.hasher.Compare(acc.PasswordHash, password); err != nil {
		return acc, err
	}
	return acc, nil
}

// Logout revokes the session and records the event.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session, meta ports.RequestMeta) error {
	if session == nil || session.ID == "" {
		return domain.ErrUnauthorized
	}
	if err := s.tokens.Revoke(ctx, session.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.record(domain.AuthEvent{
		Type:        domain.AuthEventLogout,
		IdentityKey: session.IdentityKey,
		Variant:     session.Variant,
		Success:     true,
	}, meta)
	return nil
}

// CurrentSession refreshes the user type and role id of an account session
// from the credential store. Admin sessions are returned unchanged.
func (s *AuthService) CurrentSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	current := *session
	if !session.Variant.IsAccountVariant() {
		return &current, nil
	}

	acc, err := s.accounts.FindByKey(ctx, session.Variant, session.IdentityKey)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("current session: %w", err)
	}
	current.UserType = acc.UserType()
	current.RoleID = acc.RoleID
	return &current, nil
}

func (s *AuthService) record(event domain.AuthEvent, meta ports.RequestMeta) {
	if s.audit == nil {
		return
	}
	event.IP = meta.IP
	event.UserAgent = meta.UserAgent
	event.RequestID = meta.RequestID
	event.Timestamp = s.now()
	s.audit.Record(event)
}
