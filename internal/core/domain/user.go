package domain

import "time"

const (
	RoleSuperAdmin = string(VariantSuperAdmin)
)

// SuperAdmin models a platform administrator. Admins do not live in the
// identity-provider backed tables and never take part in identity resolution.
type SuperAdmin struct {
	ID           string     `json:"adminId"`
	Email        string     `json:"adminEmail"`
	Name         string     `json:"adminName"`
	Permissions  string     `json:"permissions"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"-"`
	LastLoginAt  *time.Time `json:"-"`
}

// DefaultAdminName and DefaultAdminPermissions fill in unset admin columns.
const (
	DefaultAdminName        = "System Administrator"
	DefaultAdminPermissions = "full_access"
)

// Session is an issued login. The ID travels as the token's jti and must
// still exist in the session store for the token to be honoured.
type Session struct {
	ID          string    `json:"id"`
	IdentityKey string    `json:"identityKey"`
	Variant     Variant   `json:"variant"`
	Role        string    `json:"role"`
	UserType    string    `json:"userType"`
	RoleID      string    `json:"roleId,omitempty"`
	IssuedAt    time.Time `json:"issuedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
