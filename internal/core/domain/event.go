package domain

import "time"

// Authentication audit event types.
const (
	AuthEventLoginSuccess     = "login_success"
	AuthEventUserNotFound     = "login_failed_user_not_found"
	AuthEventWrongPassword    = "login_failed_wrong_password"
	AuthEventNoPassword       = "login_failed_no_password"
	AuthEventLogout           = "logout"
	AuthEventAdminLogin       = "admin_login"
	AuthEventAdminLoginFailed = "admin_login_failed"
	AuthEventAdminQuickLogin  = "admin_quick_login"
)

// AuthEvent records a single authentication attempt or session change.
type AuthEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"eventType"`
	IdentityKey string    `json:"identityKey,omitempty"`
	Variant     Variant   `json:"variant,omitempty"`
	Email       string    `json:"email,omitempty"`
	Success     bool      `json:"success"`
	IP          string    `json:"ip,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
	RequestID   string    `json:"requestId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Audit listing bounds.
const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 200
)

// ClampAuditLimit normalises a requested listing size.
func ClampAuditLimit(n int) int {
	if n <= 0 {
		return DefaultAuditLimit
	}
	if n > MaxAuditLimit {
		return MaxAuditLimit
	}
	return n
}
