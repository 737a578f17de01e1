package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/eventhub/account-service/internal/core/domain"
)

// errorResponse documents the envelope rendered by the HTTP error handler.
type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
}

type successResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
}

// --- Registration ---

type registerCustomerRequest struct {
	FirebaseUID  string   `json:"firebaseUid"`
	FirstName    string   `json:"firstName"    validate:"max=100"`
	LastName     string   `json:"lastName"     validate:"max=100"`
	Email        string   `json:"email"        validate:"omitempty,email"`
	Password     string   `json:"password"`
	CustomerType string   `json:"customerType"`
	PhoneNo      string   `json:"phoneNo,omitempty" validate:"max=32"`
	Preferences  []string `json:"preferences,omitempty"`
}

type registerVendorRequest struct {
	VendorID           string   `json:"vendorId"`
	VendorBusinessName string   `json:"vendorBusinessName" validate:"max=200"`
	VendorEmail        string   `json:"vendorEmail"        validate:"omitempty,email"`
	VendorPassword     string   `json:"vendorPassword"`
	VendorType         string   `json:"vendorType"`
	VendorPhoneNo      string   `json:"vendorPhoneNo,omitempty" validate:"max=32"`
	Services           string   `json:"services,omitempty"`
	Preferences        []string `json:"preferences,omitempty"`
}

type registerOrganizerRequest struct {
	OrganizerID          string `json:"organizerId"`
	OrganizerCompanyName string `json:"organizerCompanyName" validate:"max=200"`
	OrganizerEmail       string `json:"organizerEmail"       validate:"omitempty,email"`
	OrganizerPassword    string `json:"organizerPassword"`
	OrganizerType        string `json:"organizerType"`
	OrganizerIndustry    string `json:"organizerIndustry,omitempty"`
	OrganizerLocation    string `json:"organizerLocation,omitempty"`
	OrganizerLogoURL     string `json:"organizerLogoUrl,omitempty" validate:"omitempty,url"`
}

type registerResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id"`
}

// --- Login and sessions ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountView is the public projection of an account. It never carries the
// password hash.
type accountView struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	UserType     string   `json:"userType"`
	VendorType   string   `json:"vendorType,omitempty"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	BusinessName string   `json:"businessName,omitempty"`
	CompanyName  string   `json:"companyName,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Location     string   `json:"location,omitempty"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	ReviewRating *float64 `json:"reviewRating,omitempty"`
}

func newAccountView(a *domain.Account) *accountView {
	return &accountView{
		ID:           a.IdentityKey,
		Email:        a.Email,
		UserType:     a.UserType(),
		VendorType:   a.VendorType(),
		FirstName:    a.Profile.FirstName,
		LastName:     a.Profile.LastName,
		BusinessName: a.Profile.BusinessName,
		CompanyName:  a.Profile.CompanyName,
		Industry:     a.Profile.Industry,
		Location:     a.Profile.Location,
		LogoURL:      a.Profile.LogoURL,
		ReviewRating: a.Profile.ReviewRating,
	}
}

type loginResponse struct {
	Success bool         `json:"success" example:"true"`
	Token   string       `json:"token"`
	User    *accountView `json:"user"`
}

type sessionView struct {
	IdentityKey string    `json:"identityKey"`
	Role        string    `json:"role"`
	UserType    string    `json:"userType"`
	RoleID      string    `json:"roleId,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type sessionResponse struct {
	Success bool        `json:"success" example:"true"`
	Session sessionView `json:"session"`
}

// --- Identity ---

type getUserTypeRequest struct {
	FirebaseUID string `json:"firebaseUid"`
	Email       string `json:"email"`
}

type userTypeResponse struct {
	UserType   string `json:"userType"`
	VendorType string `json:"vendorType,omitempty"`
}

type getRoleRequest struct {
	FirebaseUID string `json:"firebaseUid"`
}

type roleResponse struct {
	RoleID string `json:"roleId"`
}

type syncUserRequest struct {
	FirebaseUID string `json:"firebaseUid"`
	Email       string `json:"email"      validate:"omitempty,email"`
	UserType    string `json:"userType"`
	VendorType  string `json:"vendorType,omitempty"`
}

type syncUserResponse struct {
	Success bool   `json:"success" example:"true"`
	UserID  string `json:"userId"`
	Created bool   `json:"created"`
}

// --- Super admin ---

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Success     bool   `json:"success" example:"true"`
	UserType    string `json:"userType" example:"super_admin"`
	AdminID     string `json:"adminId"`
	AdminEmail  string `json:"adminEmail"`
	AdminName   string `json:"adminName"`
	Permissions string `json:"permissions"`
	Token       string `json:"token"`
}

type verificationRequestsResponse struct {
	Success  bool                         `json:"success" example:"true"`
	Requests []domain.VerificationRequest `json:"requests"`
}

type handleVerificationRequest struct {
	VerificationID string `json:"verificationId"`
	Action         string `json:"action"     validate:"required,oneof=approve reject"`
	AdminNotes     string `json:"adminNotes" validate:"max=2000"`
}

type cancellationRequestsResponse struct {
	Success  bool                         `json:"success" example:"true"`
	Requests []domain.CancellationRequest `json:"requests"`
}

type handleCancellationRequest struct {
	CancellationID string  `json:"cancellationId"`
	Action         string  `json:"action"        validate:"required,oneof=approve reject"`
	AdminNotes     string  `json:"adminNotes"    validate:"max=2000"`
	RefundAmount   float64 `json:"refundAmount"  validate:"gte=0"`
	PenaltyAmount  float64 `json:"penaltyAmount" validate:"gte=0"`
}

type usersResponse struct {
	Success bool                 `json:"success" example:"true"`
	Users   []domain.UserSummary `json:"users"`
}

type verifyUserRequest struct {
	UserID string `json:"userId"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type verifyUserResponse struct {
	Success  bool   `json:"success" example:"true"`
	Message  string `json:"message"`
	UserType string `json:"userType"`
}

type auditEventsResponse struct {
	Success bool               `json:"success" example:"true"`
	Events  []domain.AuthEvent `json:"events"`
}

// --- Venues ---

type venueComponentsRequest struct {
	BuildingName  string `json:"buildingName"  validate:"max=200"`
	Floor         string `json:"floor"         validate:"max=50"`
	ZipCode       string `json:"zipCode"       validate:"max=20"`
	StreetAddress string `json:"streetAddress" validate:"max=300"`
	District      string `json:"district"      validate:"max=100"`
	City          string `json:"city"          validate:"max=100"`
	Province      string `json:"province"      validate:"max=100"`
	Country       string `json:"country"       validate:"max=100"`
}

type venueComponentsResponse struct {
	Success    bool  `json:"success" example:"true"`
	AddressID  int64 `json:"addressId"`
	BuildingID int64 `json:"buildingId"`
}

// --- Events and bookings ---

// numberField accepts a JSON number or a numeric string. Null and "" leave it
// unset.
type numberField struct {
	Value float64
	Set   bool
}

func (n *numberField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = numberField{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*n = numberField{}
			return nil
		}
		b = []byte(s)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = numberField{Value: v, Set: true}
	return nil
}

func (n numberField) intPtr() *int {
	if !n.Set {
		return nil
	}
	v := int(n.Value)
	return &v
}

func (n numberField) int64Ptr() *int64 {
	if !n.Set {
		return nil
	}
	v := int64(n.Value)
	return &v
}

func (n numberField) floatPtr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

type createEventRequest struct {
	EventName     string      `json:"eventName"     validate:"max=200"`
	EventOverview string      `json:"eventOverview" validate:"max=2000"`
	StartDate     string      `json:"startDate"     example:"2026-06-12"`
	EndDate       string      `json:"endDate"       example:"2026-06-12"`
	StartTime     string      `json:"startTime,omitempty" example:"18:00"`
	EndTime       string      `json:"endTime,omitempty"   example:"23:30"`
	Guests        numberField `json:"guests"        swaggertype:"number"`
	Budget        numberField `json:"budget"        swaggertype:"number"`
	EventTypeID   numberField `json:"eventTypeId"   swaggertype:"integer"`
	Attire        string      `json:"attire,omitempty"   validate:"max=100"`
	Services      []string    `json:"services,omitempty"`
	CustomerID    string      `json:"customerId"`
	OrganizerID   string      `json:"organizerId,omitempty"`
	VenueID       numberField `json:"venueId,omitempty"  swaggertype:"integer"`
}

type createEventResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Event created successfully"`
	Event   domain.Event `json:"event"`
}
