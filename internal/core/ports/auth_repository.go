package ports

import (
	"context"
	"time"

	"github.com/eventhub/account-service/internal/core/domain"
)

// AccountRepository is the credential store: one table per account variant.
// Lookups that find nothing return domain.ErrAccountNotFound.
type AccountRepository interface {
	FindByEmail(ctx context.Context, variant domain.Variant, email string) (*domain.Account, error)
	FindByKey(ctx context.Context, variant domain.Variant, key string) (*domain.Account, error)
	// FindByKeyOrEmail matches a row whose identity key equals key or whose
	// email equals email. Empty arguments never match.
	FindByKeyOrEmail(ctx context.Context, variant domain.Variant, key, email string) (*domain.Account, error)
	// Create claims the identity key and inserts the variant row atomically.
	// Uniqueness violations surface as domain.ErrEmailTaken or domain.ErrIdentityTaken.
	Create(ctx context.Context, account *domain.Account) error
	// SetVerification updates the moderation state of one row. Zero affected
	// rows is domain.ErrAccountNotFound.
	SetVerification(ctx context.Context, variant domain.Variant, key string, v domain.Verification) error
	List(ctx context.Context) ([]domain.UserSummary, error)
}

// RoleRepository reads the role directory.
type RoleRepository interface {
	// FindIDByName returns domain.ErrRoleNotFound when no row matches exactly.
	FindIDByName(ctx context.Context, name string) (string, error)
}

// AdminRepository reads super admin accounts.
type AdminRepository interface {
	FindActiveByEmail(ctx context.Context, email string) (*domain.SuperAdmin, error)
	FindByID(ctx context.Context, id string) (*domain.SuperAdmin, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// AdminActionRepository appends to the admin action log.
type AdminActionRepository interface {
	Record(ctx context.Context, action domain.AdminAction) error
}
