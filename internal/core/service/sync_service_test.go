package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

func newSyncSvc(accounts *stubAccountRepo, roles *stubRoleRepo) ports.SyncService {
	return NewSyncService(NewIdentityResolver(accounts), NewRoleDirectory(roles), accounts, zerolog.Nop())
}

func TestSync_IdempotentOnRepeat(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newSyncSvc(accounts, newStubRoleRepo())
	in := ports.SyncInput{IdentityKey: "g1", Email: "g@x.com", UserType: "individual"}

	first, err := svc.Sync(context.Background(), in)
	if err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	second, err := svc.Sync(context.Background(), in)
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	if !first.Created || second.Created {
		t.Fatalf("expected created then existing, got %v / %v", first.Created, second.Created)
	}
	if first.UserID != second.UserID {
		t.Fatalf("ids differ: %s vs %s", first.UserID, second.UserID)
	}
	if accounts.count() != 1 {
		t.Fatalf("expected exactly one row, got %d", accounts.count())
	}
}

func TestSync_PlaceholderShape(t *testing.T) {
	cases := []struct {
		userType, vendorType string
		variant              domain.Variant
		subtype              string
		roleID               string
	}{
		{"individual", "", domain.VariantCustomer, "customer", "1"},
		{"student", "", domain.VariantCustomer, "student", "1"},
		{"vendor", "", domain.VariantVendor, "general", "2"},
		{"vendor", "florist", domain.VariantVendor, "florist", "2"},
		{"organizer", "", domain.VariantOrganizer, "organizer", "3"},
	}
	for _, tc := range cases {
		t.Run(tc.userType+"/"+tc.vendorType, func(t *testing.T) {
			accounts := newStubAccountRepo()
			svc := newSyncSvc(accounts, newStubRoleRepo())

			res, err := svc.Sync(context.Background(), ports.SyncInput{
				IdentityKey: "k", Email: "k@x.com", UserType: tc.userType, VendorType: tc.vendorType,
			})
			if err != nil || !res.Created {
				t.Fatalf("sync failed: %v %+v", err, res)
			}
			row := accounts.rows[tc.variant]["k"]
			if row == nil {
				t.Fatalf("expected a %s row", tc.variant)
			}
			if row.Subtype != tc.subtype || row.RoleID != tc.roleID {
				t.Fatalf("got subtype=%s role=%s", row.Subtype, row.RoleID)
			}
			if row.PasswordHash != "" {
				t.Fatalf("placeholder must not have a password")
			}
		})
	}
}

func TestSync_ReturnsExistingAccountByEmail(t *testing.T) {
	accounts := newStubAccountRepo()
	accounts.seed(&domain.Account{IdentityKey: "orig", Variant: domain.VariantVendor, Email: "v@x.com", Subtype: "catering"})
	svc := newSyncSvc(accounts, newStubRoleRepo())

	res, err := svc.Sync(context.Background(), ports.SyncInput{IdentityKey: "new-uid", Email: "v@x.com", UserType: "organizer"})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if res.Created || res.UserID != "orig" {
		t.Fatalf("expected existing id orig, got %+v", res)
	}
	if accounts.count() != 1 {
		t.Fatalf("no row may be created")
	}
}

func TestSync_InvalidUserType(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newSyncSvc(accounts, newStubRoleRepo())

	_, err := svc.Sync(context.Background(), ports.SyncInput{IdentityKey: "k", Email: "k@x.com", UserType: "admin"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if accounts.count() != 0 {
		t.Fatalf("no row may be created")
	}
}

func TestSync_MissingFields(t *testing.T) {
	svc := newSyncSvc(newStubAccountRepo(), newStubRoleRepo())

	_, err := svc.Sync(context.Background(), ports.SyncInput{UserType: "vendor"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) != 2 {
		t.Fatalf("expected two missing fields, got %v", err)
	}
}

func TestSync_RoleNotFound(t *testing.T) {
	accounts := newStubAccountRepo()
	roles := newStubRoleRepo()
	delete(roles.ids, "vendor")
	svc := newSyncSvc(accounts, roles)

	_, err := svc.Sync(context.Background(), ports.SyncInput{IdentityKey: "k", Email: "k@x.com", UserType: "vendor"})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if accounts.count() != 0 {
		t.Fatalf("no row may be created without a role")
	}
}

func TestSync_LostRaceReturnsWinner(t *testing.T) {
	accounts := newStubAccountRepo()
	accounts.createFn = func(a *domain.Account) error {
		// Another request inserts the same identity first.
		accounts.createFn = nil
		accounts.seed(&domain.Account{IdentityKey: a.IdentityKey, Variant: a.Variant, Email: a.Email})
		return domain.ErrIdentityTaken
	}
	svc := newSyncSvc(accounts, newStubRoleRepo())

	res, err := svc.Sync(context.Background(), ports.SyncInput{IdentityKey: "k", Email: "k@x.com", UserType: "organizer"})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if res.Created || res.UserID != "k" {
		t.Fatalf("expected existing winner, got %+v", res)
	}
}
