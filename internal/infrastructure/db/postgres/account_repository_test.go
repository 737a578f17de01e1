package postgres

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
)

func TestVariantTablesCoverResolutionOrder(t *testing.T) {
	for _, v := range domain.ResolutionOrder {
		if _, err := tableFor(v); err != nil {
			t.Fatalf("tableFor(%s): %v", v, err)
		}
	}
	if _, err := tableFor(domain.VariantSuperAdmin); err == nil {
		t.Fatal("expected super admin to have no account table")
	}
}

func TestSelectListProjectsCommonAliases(t *testing.T) {
	aliases := []string{
		"AS identity_key", "AS email", "AS password_hash", "AS role_id", "AS subtype",
		"AS phone", "AS first_name", "AS last_name", "AS business_name", "AS company_name",
		"AS industry", "AS location", "AS logo_url", "AS services", "AS preferences", "AS review_rating",
	}
	for _, v := range domain.ResolutionOrder {
		list := variantTables[v].selectList()
		for _, alias := range aliases {
			if !strings.Contains(list, alias) {
				t.Errorf("%s select list is missing %q", v, alias)
			}
		}
	}

	customer := variantTables[domain.VariantCustomer].selectList()
	if !strings.Contains(customer, "NULL::text AS business_name") {
		t.Errorf("customer should select a NULL business name, got %s", customer)
	}
	if !strings.Contains(customer, "preferences::text AS preferences") {
		t.Errorf("customer preferences should be cast to text, got %s", customer)
	}
	organizer := variantTables[domain.VariantOrganizer].selectList()
	if !strings.Contains(organizer, "NULL::text AS preferences") {
		t.Errorf("organizer should select NULL preferences, got %s", organizer)
	}
	if !strings.Contains(organizer, "organizer_review_rating AS review_rating") {
		t.Errorf("organizer should select its rating, got %s", organizer)
	}
}

func TestInsertColumnsPlaceholderHasNullPassword(t *testing.T) {
	acc := &domain.Account{
		IdentityKey: "uid-1",
		Variant:     domain.VariantVendor,
		Email:       "shop@example.com",
		RoleID:      "2",
		Subtype:     domain.DefaultVendorType,
		Profile:     domain.Profile{BusinessName: "New Business"},
	}

	cols, vals, err := variantTables[domain.VariantVendor].insertColumns(acc)
	if err != nil {
		t.Fatalf("insertColumns: %v", err)
	}
	if len(cols) != len(vals) {
		t.Fatalf("got %d columns and %d values", len(cols), len(vals))
	}

	byCol := make(map[string]any, len(cols))
	for i, c := range cols {
		byCol[c] = vals[i]
	}
	if pw := byCol["vendor_password"].(sql.NullString); pw.Valid {
		t.Errorf("placeholder password should be NULL, got %q", pw.String)
	}
	if got := byCol["verification_status"]; got != domain.VerificationPending {
		t.Errorf("verification_status = %v, want pending", got)
	}
	if got := byCol["preferences"]; got != "[]" {
		t.Errorf("preferences = %v, want []", got)
	}
	if _, ok := byCol["customer_first_name"]; ok {
		t.Error("vendor insert must not reference customer columns")
	}
	if _, ok := byCol["created_at"]; ok {
		t.Error("zero created_at should be left to the column default")
	}
}

func TestInsertColumnsEncodesPreferencesAsText(t *testing.T) {
	acc := &domain.Account{
		IdentityKey: "uid-2",
		Variant:     domain.VariantCustomer,
		Email:       "fan@example.com",
		RoleID:      "1",
		Subtype:     domain.CustomerTypeStudent,
		Profile: domain.Profile{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Preferences: []string{"music", "tech"},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	cols, vals, err := variantTables[domain.VariantCustomer].insertColumns(acc)
	if err != nil {
		t.Fatalf("insertColumns: %v", err)
	}
	for i, c := range cols {
		if c == "preferences" {
			s, ok := vals[i].(string)
			if !ok {
				t.Fatalf("preferences should be a string, got %T", vals[i])
			}
			if s != `["music","tech"]` {
				t.Fatalf("preferences = %s", s)
			}
			return
		}
	}
	t.Fatal("preferences column missing")
}

func TestAccountRowToDomain(t *testing.T) {
	verified := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	row := accountRow{
		IdentityKey:        "uid-3",
		Email:              "org@example.com",
		RoleID:             sql.NullString{String: "3", Valid: true},
		Subtype:            sql.NullString{String: "organizer", Valid: true},
		CompanyName:        sql.NullString{String: "Acme Events", Valid: true},
		Preferences:        sql.NullString{String: "not json", Valid: true},
		ReviewRating:       sql.NullFloat64{Float64: 4.5, Valid: true},
		IsVerified:         true,
		VerificationStatus: domain.VerificationApproved,
		VerifiedAt:         sql.NullTime{Time: verified, Valid: true},
	}

	var logs bytes.Buffer
	acc := row.toDomain(domain.VariantOrganizer, zerolog.New(&logs).Level(zerolog.DebugLevel))
	if acc.HasPassword() {
		t.Error("NULL password must map to an account without a password")
	}
	if acc.Profile.ReviewRating == nil || *acc.Profile.ReviewRating != 4.5 {
		t.Errorf("review rating = %v", acc.Profile.ReviewRating)
	}
	if acc.Verification.VerifiedAt == nil || !acc.Verification.VerifiedAt.Equal(verified) {
		t.Errorf("verified at = %v", acc.Verification.VerifiedAt)
	}
	if acc.DisplayName() != "Acme Events" {
		t.Errorf("display name = %q", acc.DisplayName())
	}
	if acc.Profile.Preferences != nil {
		t.Errorf("invalid preferences should be ignored, got %v", acc.Profile.Preferences)
	}
	if !strings.Contains(logs.String(), "ignoring undecodable preferences") || !strings.Contains(logs.String(), "uid-3") {
		t.Errorf("decode failure was not logged: %q", logs.String())
	}
}

func TestAccountRowToDomain_DecodesPreferences(t *testing.T) {
	row := accountRow{
		IdentityKey: "uid-4",
		Preferences: sql.NullString{String: `["concerts","weddings"]`, Valid: true},
	}

	var logs bytes.Buffer
	acc := row.toDomain(domain.VariantCustomer, zerolog.New(&logs).Level(zerolog.DebugLevel))
	if len(acc.Profile.Preferences) != 2 || acc.Profile.Preferences[1] != "weddings" {
		t.Errorf("preferences = %v", acc.Profile.Preferences)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output: %q", logs.String())
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(3); got != "$1, $2, $3" {
		t.Fatalf("placeholders(3) = %q", got)
	}
}
