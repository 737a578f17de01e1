package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// identityResolver is the only place that decides which variant an external
// identity belongs to. Every mode searches domain.ResolutionOrder and stops at
// the first match.
type identityResolver struct {
	accounts ports.AccountRepository
}

// NewIdentityResolver returns an IdentityResolver implementation.
func NewIdentityResolver(accounts ports.AccountRepository) ports.IdentityResolver {
	return &identityResolver{accounts: accounts}
}

func (r *identityResolver) Resolve(ctx context.Context, q ports.IdentityQuery) (*domain.Account, error) {
	key := strings.TrimSpace(q.IdentityKey)
	email := strings.TrimSpace(q.Email)
	if key == "" && email == "" {
		return nil, domain.NewValidationError("identity key or email is required", "identityKey", "email")
	}

	acc, err := firstInOrder(ctx, domain.ResolutionOrder, func(ctx context.Context, v domain.Variant) (*domain.Account, error) {
		return r.accounts.FindByKeyOrEmail(ctx, v, key, email)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return acc, nil
}

// ResolveRoleID uses the same ordered search as Resolve, so a key present in
// two tables always yields the customer row's role first.
func (r *identityResolver) ResolveRoleID(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.MissingFields("identityKey")
	}

	acc, err := firstInOrder(ctx, domain.ResolutionOrder, func(ctx context.Context, v domain.Variant) (*domain.Account, error) {
		return r.accounts.FindByKey(ctx, v, key)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", err
		}
		return "", fmt.Errorf("resolve role id: %w", err)
	}
	if acc.RoleID == "" {
		return "", domain.ErrRoleNotFound
	}
	return acc.RoleID, nil
}
