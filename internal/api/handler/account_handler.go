package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/metrics"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// AccountHandler serves the three registration routes.
type AccountHandler struct {
	registration ports.RegistrationService
}

func NewAccountHandler(registration ports.RegistrationService) *AccountHandler {
	return &AccountHandler{registration: registration}
}

// RegisterCustomer creates a customer account.
//
// @Summary      Register a customer
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Customer details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/registerCustomer [post]
func (h *AccountHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.register(c, ports.RegisterInput{
		Variant:     domain.VariantCustomer,
		IdentityKey: req.FirebaseUID,
		Email:       req.Email,
		Password:    req.Password,
		Subtype:     req.CustomerType,
		Profile: domain.Profile{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Phone:       req.PhoneNo,
			Preferences: req.Preferences,
		},
	})
}

// RegisterVendor creates a vendor account.
//
// @Summary      Register a vendor
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerVendorRequest  true  "Vendor details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/registerVendor [post]
func (h *AccountHandler) RegisterVendor(c echo.Context) error {
	var req registerVendorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.register(c, ports.RegisterInput{
		Variant:     domain.VariantVendor,
		IdentityKey: req.VendorID,
		Email:       req.VendorEmail,
		Password:    req.VendorPassword,
		Subtype:     req.VendorType,
		Profile: domain.Profile{
			BusinessName: req.VendorBusinessName,
			Phone:        req.VendorPhoneNo,
			Services:     req.Services,
			Preferences:  req.Preferences,
		},
	})
}

// RegisterOrganizer creates an event organizer account.
//
// @Summary      Register an organizer
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerOrganizerRequest  true  "Organizer details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/registerOrganizer [post]
func (h *AccountHandler) RegisterOrganizer(c echo.Context) error {
	var req registerOrganizerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	return h.register(c, ports.RegisterInput{
		Variant:     domain.VariantOrganizer,
		IdentityKey: req.OrganizerID,
		Email:       req.OrganizerEmail,
		Password:    req.OrganizerPassword,
		Subtype:     req.OrganizerType,
		Profile: domain.Profile{
			CompanyName: req.OrganizerCompanyName,
			Industry:    req.OrganizerIndustry,
			Location:    req.OrganizerLocation,
			LogoURL:     req.OrganizerLogoURL,
		},
	})
}

func (h *AccountHandler) register(c echo.Context, in ports.RegisterInput) error {
	acc, err := h.registration.Register(c.Request().Context(), in)
	metrics.RegistrationsTotal.WithLabelValues(string(in.Variant), registrationResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, registerResponse{Success: true, ID: acc.IdentityKey})
}

func registrationResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrIdentityTaken):
		return "conflict"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrRoleNotFound):
		return "role_not_found"
	default:
		return "error"
	}
}
