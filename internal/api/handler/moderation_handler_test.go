package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/eventhub/account-service/internal/core/domain"
)

var adminSession = &domain.Session{
	ID:          "s-admin",
	IdentityKey: "super_admin_001",
	Variant:     domain.VariantSuperAdmin,
	Role:        domain.RoleSuperAdmin,
}

func TestModerationHandler_HandleVerification(t *testing.T) {
	stub := &stubModeration{}
	h := NewModerationHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/admin/handle-verification",
		`{"verificationId":"5","action":"approve","adminNotes":"docs ok"}`)
	withSession(c, adminSession)

	if err := h.HandleVerification(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Verification request approved successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if stub.verification.AdminID != "super_admin_001" || stub.verification.VerificationID != "5" {
		t.Fatalf("unexpected input: %+v", stub.verification)
	}
}

func TestModerationHandler_HandleVerification_BadAction(t *testing.T) {
	stub := &stubModeration{}
	h := NewModerationHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/api/admin/handle-verification",
		`{"verificationId":"5","action":"maybe"}`)
	withSession(c, adminSession)

	if err := h.HandleVerification(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.verification.VerificationID != "" {
		t.Fatal("service must not be called for an invalid action")
	}
}

func TestModerationHandler_HandleCancellation_NegativeAmount(t *testing.T) {
	h := NewModerationHandler(&stubModeration{})

	c, _ := newJSONContext(http.MethodPost, "/api/admin/handle-cancellation",
		`{"cancellationId":"7","action":"approve","refundAmount":-1}`)
	withSession(c, adminSession)

	if err := h.HandleCancellation(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModerationHandler_HandleCancellation_NotFound(t *testing.T) {
	h := NewModerationHandler(&stubModeration{err: domain.ErrCancellationRequestNotFound})

	c, _ := newJSONContext(http.MethodPost, "/api/admin/handle-cancellation",
		`{"cancellationId":"7","action":"reject","refundAmount":0,"penaltyAmount":10}`)
	withSession(c, adminSession)

	if err := h.HandleCancellation(c); !errors.Is(err, domain.ErrCancellationRequestNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestModerationHandler_ListVerificationRequests_Empty(t *testing.T) {
	h := NewModerationHandler(&stubModeration{})

	c, rec := newJSONContext(http.MethodGet, "/api/admin/verification-requests", "")
	if err := h.ListVerificationRequests(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"requests":[]`) {
		t.Fatalf("expected an empty array, got %s", rec.Body.String())
	}
}

func TestModerationHandler_ListUsers(t *testing.T) {
	h := NewModerationHandler(&stubModeration{})

	c, rec := newJSONContext(http.MethodGet, "/api/admin/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp usersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].UserType != "individual" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
}

func TestModerationHandler_VerifyUser(t *testing.T) {
	stub := &stubModeration{}
	h := NewModerationHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/admin/verify-user", `{"userId":"c-1","action":"reject"}`)
	withSession(c, adminSession)

	if err := h.VerifyUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp verifyUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserType != "individual" || resp.Message != "User rejected successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if stub.verify.AdminID != "super_admin_001" {
		t.Fatalf("admin id not taken from session: %+v", stub.verify)
	}
}

func TestModerationHandler_VerifyUser_NoSession(t *testing.T) {
	h := NewModerationHandler(&stubModeration{})

	c, _ := newJSONContext(http.MethodPost, "/api/admin/verify-user", `{"userId":"c-1","action":"approve"}`)
	if err := h.VerifyUser(c); err == nil {
		t.Fatal("expected 401 without a session")
	}
}

func TestModerationHandler_AuditEvents_Limit(t *testing.T) {
	stub := &stubModeration{}
	h := NewModerationHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/api/admin/audit-events?limit=20", "")
	if err := h.AuditEvents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.limit != 20 {
		t.Fatalf("expected limit 20, got %d", stub.limit)
	}
	if !strings.Contains(rec.Body.String(), `"events":[]`) {
		t.Fatalf("expected an empty array, got %s", rec.Body.String())
	}
}

func TestModerationHandler_AuditEvents_BadLimit(t *testing.T) {
	h := NewModerationHandler(&stubModeration{})

	c, _ := newJSONContext(http.MethodGet, "/api/admin/audit-events?limit=ten", "")
	if err := h.AuditEvents(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
