package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eventhub/account-service/internal/core/domain"
)

type adminRow struct {
	ID          string         `db:"admin_id"`
	Email       string         `db:"admin_email"`
	Name        sql.NullString `db:"admin_name"`
	Permissions sql.NullString `db:"admin_permissions"`
	Password    sql.NullString `db:"admin_password"`
	IsActive    bool           `db:"is_active"`
	LastLoginAt sql.NullTime   `db:"last_login_timestamp"`
}

func (r adminRow) toDomain() *domain.SuperAdmin {
	a := &domain.SuperAdmin{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name.String,
		Permissions:  r.Permissions.String,
		PasswordHash: r.Password.String,
		IsActive:     r.IsActive,
	}
	if r.LastLoginAt.Valid {
		at := r.LastLoginAt.Time
		a.LastLoginAt = &at
	}
	return a
}

const adminColumns = `admin_id, admin_email, admin_name, admin_permissions, admin_password, is_active, last_login_timestamp`

// AdminRepository reads super_admin_account_data and appends to admin_actions.
type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) get(ctx context.Context, where string, arg string) (*domain.SuperAdmin, error) {
	var row adminRow
	query := `SELECT ` + adminColumns + ` FROM super_admin_account_data WHERE ` + where + ` LIMIT 1`
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if err = translateError(err, domain.ErrAdminNotFound); errors.Is(err, domain.ErrAdminNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find super admin: %w", err)
	}
	return row.toDomain(), nil
}

func (r *AdminRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.SuperAdmin, error) {
	return r.get(ctx, `admin_email = $1 AND is_active = true`, email)
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*domain.SuperAdmin, error) {
	return r.get(ctx, `admin_id = $1`, id)
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE super_admin_account_data SET last_login_timestamp = $1 WHERE admin_id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// Record inserts one row into admin_actions.
func (r *AdminRepository) Record(ctx context.Context, a domain.AdminAction) error {
	at := a.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO admin_actions (admin_id, action_type, target_id, action_details, timestamp)
		 VALUES (:admin_id, :action_type, :target_id, :action_details, :timestamp)`,
		map[string]any{
			"admin_id":       a.AdminID,
			"action_type":    a.Type,
			"target_id":      nullString(a.TargetID),
			"action_details": a.Details,
			"timestamp":      at,
		})
	if err != nil {
		return fmt.Errorf("record admin action: %w", err)
	}
	return nil
}
