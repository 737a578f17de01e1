package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
	"github.com/eventhub/account-service/internal/pkg/sanitize"
)

// roleResolver is satisfied by *RoleDirectory.
type roleResolver interface {
	ResolveRoleID(ctx context.Context, name string) (string, error)
}

type registrationService struct {
	roles    roleResolver
	accounts ports.AccountRepository
	hasher   PasswordHasher
	log      zerolog.Logger
	now      func() time.Time
}

// NewRegistrationService returns a RegistrationService implementation.
func NewRegistrationService(
	roles roleResolver,
	accounts ports.AccountRepository,
	hasher PasswordHasher,
	log zerolog.Logger,
) ports.RegistrationService {
	return &registrationService{
		roles:    roles,
		accounts: accounts,
		hasher:   hasher,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register validates the input, resolves the variant's role, hashes the
// password and writes exactly one account row. No row is written on any
// failure path.
func (s *registrationService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	in = normaliseRegistration(in)

	// 1. Required fields and subtype.
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	// 2. Role id. Customer subtypes all resolve the customer role.
	roleID, err := s.roles.ResolveRoleID(ctx, in.Variant.RoleName())
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", in.Variant, err)
	}

	// 3. Hash.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", in.Variant, err)
	}

	// 4. Insert.
	account := &domain.Account{
		IdentityKey:  in.IdentityKey,
		Variant:      in.Variant,
		Email:        in.Email,
		PasswordHash: hash,
		RoleID:       roleID,
		Subtype:      in.Subtype,
		Profile:      in.Profile,
		Verification: domain.Verification{Status: domain.VerificationPending},
		CreatedAt:    s.now(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("register %s: %w", in.Variant, err)
	}

	s.log.Info().
		Str("variant", string(in.Variant)).
		Str("identity_key", in.IdentityKey).
		Str("subtype", in.Subtype).
		Msg("account registered")

	account.PasswordHash = ""
	return account, nil
}

func normaliseRegistration(in ports.RegisterInput) ports.RegisterInput {
	in.IdentityKey = strings.TrimSpace(in.IdentityKey)
	in.Email = strings.TrimSpace(in.Email)
	in.Subtype = strings.TrimSpace(in.Subtype)
	in.Profile = sanitizeProfile(in.Profile)
	return in
}

func sanitizeProfile(p domain.Profile) domain.Profile {
	p.FirstName = sanitize.Text(p.FirstName)
	p.LastName = sanitize.Text(p.LastName)
	p.BusinessName = sanitize.Text(p.BusinessName)
	p.CompanyName = sanitize.Text(p.CompanyName)
	p.Industry = sanitize.Text(p.Industry)
	p.Location = sanitize.Text(p.Location)
	p.LogoURL = strings.TrimSpace(p.LogoURL)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Services = sanitize.Text(p.Services)
	p.Preferences = sanitize.Strings(p.Preferences)
	return p
}

func validateRegistration(in ports.RegisterInput) error {
	var missing []string
	require := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	require("identityKey", in.IdentityKey)
	require("email", in.Email)
	require("password", in.Password)
	require("subtype", in.Subtype)

	switch in.Variant {
	case domain.VariantCustomer:
		require("firstName", in.Profile.FirstName)
		require("lastName", in.Profile.LastName)
	case domain.VariantVendor:
		require("businessName", in.Profile.BusinessName)
	case domain.VariantOrganizer:
		require("companyName", in.Profile.CompanyName)
	default:
		return domain.NewValidationError(fmt.Sprintf("unsupported account variant %q", in.Variant), "variant")
	}

	if len(missing) > 0 {
		return domain.MissingFields(missing...)
	}

	if len(in.Password) > MaxPasswordBytes {
		return domain.NewValidationError("password must be at most 72 bytes", "password")
	}

	if in.Variant == domain.VariantCustomer && !domain.IsCustomerType(in.Subtype) {
		return domain.NewValidationError(
			"customer type must be one of: "+strings.Join(domain.CustomerTypes, ", "),
			"subtype",
		)
	}
	return nil
}
