package domain

import "testing"

func TestAccount_UserType(t *testing.T) {
	cases := []struct {
		name       string
		acc        Account
		userType   string
		vendorType string
	}{
		{"customer reports subtype", Account{Variant: VariantCustomer, Subtype: CustomerTypeChurch}, "church", ""},
		{"vendor reports vendor", Account{Variant: VariantVendor, Subtype: "catering"}, "vendor", "catering"},
		{"organizer reports subtype", Account{Variant: VariantOrganizer, Subtype: "corporate"}, "corporate", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.acc.UserType(); got != tc.userType {
				t.Errorf("UserType() = %q, want %q", got, tc.userType)
			}
			if got := tc.acc.VendorType(); got != tc.vendorType {
				t.Errorf("VendorType() = %q, want %q", got, tc.vendorType)
			}
		})
	}
}

func TestAccount_DisplayName(t *testing.T) {
	c := Account{Variant: VariantCustomer, Profile: Profile{FirstName: "Ada", LastName: ""}}
	if got := c.DisplayName(); got != "Ada" {
		t.Errorf("customer display name = %q", got)
	}
	v := Account{Variant: VariantVendor, Profile: Profile{BusinessName: "Acme"}}
	if got := v.DisplayName(); got != "Acme" {
		t.Errorf("vendor display name = %q", got)
	}
}

func TestResolutionOrder(t *testing.T) {
	want := []Variant{VariantCustomer, VariantVendor, VariantOrganizer}
	if len(ResolutionOrder) != len(want) {
		t.Fatalf("unexpected order %v", ResolutionOrder)
	}
	for i, v := range want {
		if ResolutionOrder[i] != v {
			t.Fatalf("position %d: got %s, want %s", i, ResolutionOrder[i], v)
		}
	}
	if VariantSuperAdmin.IsAccountVariant() {
		t.Fatal("super admins must not take part in resolution")
	}
}

func TestListingType_RoundTrip(t *testing.T) {
	for _, v := range ResolutionOrder {
		got, ok := VariantFromListingType(v.ListingType())
		if !ok || got != v {
			t.Errorf("VariantFromListingType(%q) = %q, %v", v.ListingType(), got, ok)
		}
	}
	if VariantCustomer.ListingType() != "individual" {
		t.Errorf("customers are listed as individual")
	}
	if _, ok := VariantFromListingType("super_admin"); ok {
		t.Errorf("super_admin is not a listing type")
	}
}

func TestIsCustomerType(t *testing.T) {
	for _, s := range CustomerTypes {
		if !IsCustomerType(s) {
			t.Errorf("%q should be accepted", s)
		}
	}
	if IsCustomerType("vendor") || IsCustomerType("") {
		t.Error("non customer types accepted")
	}
}
