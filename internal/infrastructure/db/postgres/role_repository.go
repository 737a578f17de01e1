package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhub/account-service/internal/core/domain"
)

// RoleRepository reads the role directory.
type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindIDByName(ctx context.Context, name string) (string, error) {
	var id string
	err := r.db.GetContext(ctx, &id, `SELECT role_id::text FROM role WHERE role_name = $1`, name)
	if err != nil {
		if err = translateError(err, domain.ErrRoleNotFound); errors.Is(err, domain.ErrRoleNotFound) {
			return "", err
		}
		return "", fmt.Errorf("find role %q: %w", name, err)
	}
	return id, nil
}
