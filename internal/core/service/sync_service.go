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

// Sync user types accepted besides the customer subtypes.
const (
	SyncTypeIndividual = "individual"
	SyncTypeVendor     = "vendor"
	SyncTypeOrganizer  = "organizer"
)

type syncService struct {
	resolver ports.IdentityResolver
	roles    roleResolver
	accounts ports.AccountRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewSyncService returns a SyncService implementation.
func NewSyncService(
	resolver ports.IdentityResolver,
	roles roleResolver,
	accounts ports.AccountRepository,
	log zerolog.Logger,
) ports.SyncService {
	return &syncService{
		resolver: resolver,
		roles:    roles,
		accounts: accounts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Sync returns the existing account matching the identity key or email, or
// creates a password-less placeholder in the table named by the user type.
// Repeated calls with the same input never create a second row.
func (s *syncService) Sync(ctx context.Context, in ports.SyncInput) (*ports.SyncResult, error) {
	in.IdentityKey = strings.TrimSpace(in.IdentityKey)
	in.Email = strings.TrimSpace(in.Email)
	in.UserType = strings.TrimSpace(in.UserType)
	in.VendorType = strings.TrimSpace(in.VendorType)

	var missing []string
	if in.IdentityKey == "" {
		missing = append(missing, "identityKey")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.UserType == "" {
		missing = append(missing, "userType")
	}
	if len(missing) > 0 {
		return nil, domain.MissingFields(missing...)
	}

	placeholder, err := placeholderFor(in)
	if err != nil {
		return nil, err
	}

	if existing, err := s.findExisting(ctx, in); err != nil {
		return nil, err
	} else if existing != nil {
		return &ports.SyncResult{UserID: existing.IdentityKey}, nil
	}

	roleID, err := s.roles.ResolveRoleID(ctx, placeholder.Variant.RoleName())
	if err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}
	placeholder.RoleID = roleID
	placeholder.CreatedAt = s.now()

	if err := s.accounts.Create(ctx, placeholder); err != nil {
		// A concurrent sync may have won the race; report its row.
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrIdentityTaken) {
			if existing, findErr := s.findExisting(ctx, in); findErr == nil && existing != nil {
				return &ports.SyncResult{UserID: existing.IdentityKey}, nil
			}
		}
		return nil, fmt.Errorf("sync user: %w", err)
	}

	s.log.Info().
		Str("identity_key", placeholder.IdentityKey).
		Str("variant", string(placeholder.Variant)).
		Msg("placeholder account created")

	return &ports.SyncResult{UserID: placeholder.IdentityKey, Created: true}, nil
}

func (s *syncService) findExisting(ctx context.Context, in ports.SyncInput) (*domain.Account, error) {
	acc, err := s.resolver.Resolve(ctx, ports.IdentityQuery{IdentityKey: in.IdentityKey, Email: in.Email})
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}
	return acc, nil
}

// placeholderFor maps a sync user type onto the placeholder row it creates.
func placeholderFor(in ports.SyncInput) (*domain.Account, error) {
	acc := &domain.Account{
		IdentityKey:  in.IdentityKey,
		Email:        in.Email,
		Verification: domain.Verification{Status: domain.VerificationPending},
	}

	switch {
	case in.UserType == SyncTypeIndividual:
		acc.Variant = domain.VariantCustomer
		acc.Subtype = domain.CustomerTypeCustomer
	case domain.IsCustomerType(in.UserType):
		acc.Variant = domain.VariantCustomer
		acc.Subtype = in.UserType
	case in.UserType == SyncTypeVendor:
		acc.Variant = domain.VariantVendor
		acc.Subtype = in.VendorType
		if acc.Subtype == "" {
			acc.Subtype = domain.DefaultVendorType
		}
	case in.UserType == SyncTypeOrganizer:
		acc.Variant = domain.VariantOrganizer
		acc.Subtype = SyncTypeOrganizer
	default:
		return nil, domain.NewValidationError(fmt.Sprintf("invalid user type: %s", in.UserType), "userType")
	}

	switch acc.Variant {
	case domain.VariantCustomer:
		acc.Profile.FirstName = "New"
		acc.Profile.LastName = "User"
	case domain.VariantVendor:
		acc.Profile.BusinessName = "New Business"
	case domain.VariantOrganizer:
		acc.Profile.CompanyName = "New Company"
	}
	return acc, nil
}
