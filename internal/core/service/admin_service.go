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

// AdminAuthConfig controls the development quick-login route.
type AdminAuthConfig struct {
	QuickLoginEnabled bool
	QuickLoginID      string
}

// AdminAuthService authenticates super admins. Updating the last login
// timestamp and writing the admin action are best-effort: their failure is
// logged and never fails the login.
type AdminAuthService struct {
	admins     ports.AdminRepository
	actions    ports.AdminActionRepository
	hasher     PasswordHasher
	tokens     *TokenIssuer
	audit      ports.AuthEventSink
	cfg        AdminAuthConfig
	log        zerolog.Logger
	timingHash string
	now        func() time.Time
}

func NewAdminAuthService(
	admins ports.AdminRepository,
	actions ports.AdminActionRepository,
	hasher PasswordHasher,
	tokens *TokenIssuer,
	audit ports.AuthEventSink,
	cfg AdminAuthConfig,
	log zerolog.Logger,
) *AdminAuthService {
	return &AdminAuthService{
		admins:     admins,
		actions:    actions,
		hasher:     hasher,
		tokens:     tokens,
		audit:      audit,
		cfg:        cfg,
		log:        log,
		timingHash: timingHash(hasher),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Login checks an active admin's password. Unknown emails and wrong passwords
// both return domain.ErrInvalidCredentials.
func (s *AdminAuthService) Login(ctx context.Context, email, password string, meta ports.RequestMeta) (*ports.AdminLoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		var missing []string
		if email == "" {
			missing = append(missing, "email")
		}
		if password == "" {
			missing = append(missing, "password")
		}
		return nil, domain.MissingFields(missing...)
	}

	admin, err := s.admins.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			if s.timingHash != "" {
				_ = s.hasher.Compare(s.timingHash, password)
			}
			s.reject(email, "", meta)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("admin login: %w", err)
	}

	if admin.PasswordHash == "" {
		s.reject(email, admin.ID, meta)
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			s.reject(email, admin.ID, meta)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("admin login: %w", err)
	}

	return s.complete(ctx, admin, domain.AdminActionLogin, "Super admin login successful", domain.AuthEventAdminLogin, meta)
}

// QuickLogin signs in as the configured admin without a password. It is
// reported as domain.ErrQuickLoginDisabled unless explicitly enabled.
func (s *AdminAuthService) QuickLogin(ctx context.Context, meta ports.RequestMeta) (*ports.AdminLoginResult, error) {
	if !s.cfg.QuickLoginEnabled || s.cfg.QuickLoginID == "" {
		return nil, domain.ErrQuickLoginDisabled
	}

	admin, err := s.admins.FindByID(ctx, s.cfg.QuickLoginID)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("admin quick login: %w", err)
	}

	return s.complete(ctx, admin, domain.AdminActionQuickLogin, "Super admin quick login successful", domain.AuthEventAdminQuickLogin, meta)
}

func (s *AdminAuthService) complete(
	ctx context.Context,
	admin *domain.SuperAdmin,
	actionType, details, eventType string,
	meta ports.RequestMeta,
) (*ports.AdminLoginResult, error) {
	token, err := s.tokens.Issue(ctx, &domain.Session{
		IdentityKey: admin.ID,
		Variant:     domain.VariantSuperAdmin,
		Role:        domain.RoleSuperAdmin,
		UserType:    domain.RoleSuperAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}

	now := s.now()
	if err := s.admins.TouchLastLogin(ctx, admin.ID, now); err != nil {
		s.log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")
	}
	if err := s.actions.Record(ctx, domain.AdminAction{
		AdminID: admin.ID,
		Type:    actionType,
		Details: details,
		At:      now,
	}); err != nil {
		s.log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to record admin action")
	}

	if s.audit != nil {
		s.audit.Record(domain.AuthEvent{
			Type:        eventType,
			IdentityKey: admin.ID,
			Variant:     domain.VariantSuperAdmin,
			Email:       admin.Email,
			Success:     true,
			IP:          meta.IP,
			UserAgent:   meta.UserAgent,
			RequestID:   meta.RequestID,
			Timestamp:   now,
		})
	}

	s.log.Info().Str("admin_id", admin.ID).Str("action", actionType).Msg("super admin signed in")

	out := *admin
	out.PasswordHash = ""
	if out.Name == "" {
		out.Name = domain.DefaultAdminName
	}
	if out.Permissions == "" {
		out.Permissions = domain.DefaultAdminPermissions
	}
	return &ports.AdminLoginResult{Admin: &out, Token: token}, nil
}

func (s *AdminAuthService) reject(email, adminID string, meta ports.RequestMeta) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Type:        domain.AuthEventAdminLoginFailed,
		IdentityKey: adminID,
		Variant:     domain.VariantSuperAdmin,
		Email:       email,
		IP:          meta.IP,
		UserAgent:   meta.UserAgent,
		RequestID:   meta.RequestID,
		Timestamp:   s.now(),
	})
}
