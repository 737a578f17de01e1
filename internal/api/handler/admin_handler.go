package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/metrics"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// AdminHandler serves super admin authentication.
type AdminHandler struct {
	admins ports.AdminAuthService
}

func NewAdminHandler(admins ports.AdminAuthService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Login authenticates a super admin.
//
// @Summary      Super admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/superAdminLogin [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.admins.Login(c.Request().Context(), req.Email, req.Password, requestMeta(c))
	metrics.LoginsTotal.WithLabelValues("super_admin", loginResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAdminLoginResponse(res))
}

// QuickLogin signs in as the configured development admin.
//
// @Summary      Super admin quick login (development only)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminLoginResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/superAdminQuickLogin [post]
func (h *AdminHandler) QuickLogin(c echo.Context) error {
	res, err := h.admins.QuickLogin(c.Request().Context(), requestMeta(c))
	if !errors.Is(err, domain.ErrQuickLoginDisabled) {
		metrics.LoginsTotal.WithLabelValues("super_admin_quick", loginResult(err)).Inc()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAdminLoginResponse(res))
}

func newAdminLoginResponse(res *ports.AdminLoginResult) adminLoginResponse {
	return adminLoginResponse{
		Success:     true,
		UserType:    domain.RoleSuperAdmin,
		AdminID:     res.Admin.ID,
		AdminEmail:  res.Admin.Email,
		AdminName:   res.Admin.Name,
		Permissions: res.Admin.Permissions,
		Token:       res.Token,
	}
}
