package domain

import (
	"strings"
	"time"
)

// Variant identifies which account family a row belongs to.
type Variant string

const (
	VariantCustomer   Variant = "customer"
	VariantVendor     Variant = "vendor"
	VariantOrganizer  Variant = "organizer"
	VariantSuperAdmin Variant = "super_admin"
)

// ResolutionOrder is the fixed search order used by every resolver. The first
// variant holding a match wins; later variants are not consulted.
var ResolutionOrder = []Variant{VariantCustomer, VariantVendor, VariantOrganizer}

// RoleName returns the canonical role directory name for the variant.
func (v Variant) RoleName() string { return string(v) }

// IsAccountVariant reports whether v is one of the three identity-provider backed variants.
func (v Variant) IsAccountVariant() bool {
	switch v {
	case VariantCustomer, VariantVendor, VariantOrganizer:
		return true
	}
	return false
}

// Customer subtypes. All of them share the customer role.
const (
	CustomerTypeEnthusiast = "enthusiast"
	CustomerTypeStudent    = "student"
	CustomerTypeChurch     = "church"
	CustomerTypeCustomer   = "customer"
)

// CustomerTypes lists the accepted customer subtypes.
var CustomerTypes = []string{CustomerTypeEnthusiast, CustomerTypeStudent, CustomerTypeChurch, CustomerTypeCustomer}

// IsCustomerType reports whether s is an accepted customer subtype.
func IsCustomerType(s string) bool {
	for _, t := range CustomerTypes {
		if t == s {
			return true
		}
	}
	return false
}

// DefaultVendorType is used when a vendor is created without an explicit type.
const DefaultVendorType = "general"

// Verification states written by moderation.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Profile holds the optional display attributes of an account. Which fields
// are populated depends on the variant.
type Profile struct {
	FirstName    string
	LastName     string
	BusinessName string
	CompanyName  string
	Industry     string
	Location     string
	LogoURL      string
	Phone        string
	Services     string
	Preferences  []string
	ReviewRating *float64
}

// Verification is the moderation state of an account.
type Verification struct {
	IsVerified bool
	Status     string
	VerifiedAt *time.Time
}

// Account is a customer, vendor or organizer row.
type Account struct {
	IdentityKey  string
	Variant      Variant
	Email        string
	PasswordHash string `json:"-"`
	RoleID       string
	Subtype      string
	Profile      Profile
	Verification Verification
	CreatedAt    time.Time
}

// HasPassword reports whether the account can authenticate by password.
// Placeholder accounts created by sync carry no hash.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// UserType is the client-facing type of the account. Customers and organizers
// report their own subtype; vendors always report "vendor".
func (a *Account) UserType() string {
	if a.Variant == VariantVendor {
		return string(VariantVendor)
	}
	return a.Subtype
}

// VendorType returns the vendor subtype, or "" for other variants.
func (a *Account) VendorType() string {
	if a.Variant == VariantVendor {
		return a.Subtype
	}
	return ""
}

// DisplayName is the human readable name used in admin listings.
func (a *Account) DisplayName() string {
	switch a.Variant {
	case VariantCustomer:
		return strings.TrimSpace(a.Profile.FirstName + " " + a.Profile.LastName)
	case VariantVendor:
		return a.Profile.BusinessName
	case VariantOrganizer:
		return a.Profile.CompanyName
	}
	return ""
}

// ListingType is the type label used by the admin user list and the
// verification queue, where every customer is an "individual".
func (v Variant) ListingType() string {
	if v == VariantCustomer {
		return "individual"
	}
	return string(v)
}

// VariantFromListingType is the inverse of ListingType.
func VariantFromListingType(s string) (Variant, bool) {
	switch s {
	case "individual":
		return VariantCustomer, true
	case "vendor":
		return VariantVendor, true
	case "organizer":
		return VariantOrganizer, true
	}
	return "", false
}
