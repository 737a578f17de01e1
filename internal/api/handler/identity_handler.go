package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/metrics"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// IdentityHandler maps identity-provider users onto local accounts.
type IdentityHandler struct {
	resolver ports.IdentityResolver
	sync     ports.SyncService
}

func NewIdentityHandler(resolver ports.IdentityResolver, sync ports.SyncService) *IdentityHandler {
	return &IdentityHandler{resolver: resolver, sync: sync}
}

// GetUserType returns the user type of the first account matching the
// identity key or email, probing customers, vendors and organizers in order.
//
// @Summary      Resolve user type
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      getUserTypeRequest  true  "Identity key and/or email"
// @Success      200   {object}  userTypeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/getUserType [post]
func (h *IdentityHandler) GetUserType(c echo.Context) error {
	var req getUserTypeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	acc, err := h.resolver.Resolve(c.Request().Context(), ports.IdentityQuery{
		IdentityKey: req.FirebaseUID,
		Email:       req.Email,
	})
	if err != nil {
		metrics.IdentityResolutionsTotal.WithLabelValues("user_type", resolutionResult(err)).Inc()
		return err
	}
	metrics.IdentityResolutionsTotal.WithLabelValues("user_type", string(acc.Variant)).Inc()

	return c.JSON(http.StatusOK, userTypeResponse{
		UserType:   acc.UserType(),
		VendorType: acc.VendorType(),
	})
}

// GetRole returns the role id of the account holding the identity key.
//
// @Summary      Resolve role id
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      getRoleRequest  true  "Identity key"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/getRole [post]
func (h *IdentityHandler) GetRole(c echo.Context) error {
	var req getRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.FirebaseUID == "" {
		return domain.MissingFields("firebaseUid")
	}

	roleID, err := h.resolver.ResolveRoleID(c.Request().Context(), req.FirebaseUID)
	metrics.IdentityResolutionsTotal.WithLabelValues("role", resolutionResult(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) || errors.Is(err, domain.ErrRoleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Role not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{RoleID: roleID})
}

// SyncUser mirrors an identity-provider sign-in, creating a placeholder
// account the first time it is seen.
//
// @Summary      Sync identity-provider user
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        body  body      syncUserRequest  true  "Identity-provider user"
// @Success      200   {object}  syncUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/syncUser [post]
func (h *IdentityHandler) SyncUser(c echo.Context) error {
	var req syncUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.sync.Sync(c.Request().Context(), ports.SyncInput{
		IdentityKey: req.FirebaseUID,
		Email:       req.Email,
		UserType:    req.UserType,
		VendorType:  req.VendorType,
	})
	if err != nil {
		metrics.IdentityResolutionsTotal.WithLabelValues("sync", resolutionResult(err)).Inc()
		return err
	}
	result := "existing"
	if res.Created {
		result = "created"
	}
	metrics.IdentityResolutionsTotal.WithLabelValues("sync", result).Inc()

	return c.JSON(http.StatusOK, syncUserResponse{Success: true, UserID: res.UserID, Created: res.Created})
}

func resolutionResult(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrRoleNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
