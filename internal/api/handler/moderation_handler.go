package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/metrics"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// ModerationHandler serves the super admin console. Every route runs behind
// Auth and RBAC(super_admin).
type ModerationHandler struct {
	moderation ports.ModerationService
}

func NewModerationHandler(moderation ports.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// ListVerificationRequests returns every verification request, unreviewed first.
//
// @Summary      List verification requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verificationRequestsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/verification-requests [get]
func (h *ModerationHandler) ListVerificationRequests(c echo.Context) error {
	reqs, err := h.moderation.ListVerificationRequests(c.Request().Context())
	if err != nil {
		return err
	}
	if reqs == nil {
		reqs = []domain.VerificationRequest{}
	}
	return c.JSON(http.StatusOK, verificationRequestsResponse{Success: true, Requests: reqs})
}

// HandleVerification approves or rejects a verification request.
//
// @Summary      Resolve a verification request
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handleVerificationRequest  true  "Decision"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/handle-verification [post]
func (h *ModerationHandler) HandleVerification(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req handleVerificationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.moderation.HandleVerification(c.Request().Context(), ports.HandleVerificationInput{
		AdminID:        session.IdentityKey,
		VerificationID: req.VerificationID,
		Action:         req.Action,
		AdminNotes:     req.AdminNotes,
	}); err != nil {
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues("verification_request", req.Action).Inc()

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "Verification request " + decisionPast(req.Action) + " successfully",
	})
}

// ListCancellationRequests returns the pending cancellation requests.
//
// @Summary      List pending cancellation requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cancellationRequestsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/cancellation-requests [get]
func (h *ModerationHandler) ListCancellationRequests(c echo.Context) error {
	reqs, err := h.moderation.ListCancellationRequests(c.Request().Context())
	if err != nil {
		return err
	}
	if reqs == nil {
		reqs = []domain.CancellationRequest{}
	}
	return c.JSON(http.StatusOK, cancellationRequestsResponse{Success: true, Requests: reqs})
}

// HandleCancellation approves or rejects an event cancellation.
//
// @Summary      Resolve a cancellation request
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handleCancellationRequest  true  "Decision"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/handle-cancellation [post]
func (h *ModerationHandler) HandleCancellation(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req handleCancellationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.moderation.HandleCancellation(c.Request().Context(), ports.HandleCancellationInput{
		AdminID:        session.IdentityKey,
		CancellationID: req.CancellationID,
		Action:         req.Action,
		AdminNotes:     req.AdminNotes,
		RefundAmount:   req.RefundAmount,
		PenaltyAmount:  req.PenaltyAmount,
	}); err != nil {
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues("cancellation_request", req.Action).Inc()

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "Cancellation request " + decisionPast(req.Action) + " successfully",
	})
}

// ListUsers returns every account across the three variants.
//
// @Summary      List customer, vendor and organizer accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *ModerationHandler) ListUsers(c echo.Context) error {
	users, err := h.moderation.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.UserSummary{}
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}

// VerifyUser sets the verification state of the account owning userId.
//
// @Summary      Verify an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      verifyUserRequest  true  "Decision"
// @Success      200   {object}  verifyUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/verify-user [post]
func (h *ModerationHandler) VerifyUser(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req verifyUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	variant, err := h.moderation.VerifyUser(c.Request().Context(), ports.VerifyUserInput{
		AdminID: session.IdentityKey,
		UserID:  req.UserID,
		Action:  req.Action,
	})
	if err != nil {
		return err
	}
	metrics.ModerationActionsTotal.WithLabelValues("account", req.Action).Inc()

	return c.JSON(http.StatusOK, verifyUserResponse{
		Success:  true,
		Message:  "User " + decisionPast(req.Action) + " successfully",
		UserType: variant.ListingType(),
	})
}

// AuditEvents lists recent authentication events.
//
// @Summary      Recent authentication events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events (default 50, max 200)"
// @Success      200    {object}  auditEventsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/admin/audit-events [get]
func (h *ModerationHandler) AuditEvents(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.NewValidationError("limit must be an integer", "limit")
		}
		limit = n
	}

	events, err := h.moderation.RecentAuthEvents(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.AuthEvent{}
	}
	return c.JSON(http.StatusOK, auditEventsResponse{Success: true, Events: events})
}

// decisionPast renders a validated action for response messages.
func decisionPast(action string) string {
	if action == string(domain.DecisionApprove) {
		return domain.VerificationApproved
	}
	return domain.VerificationRejected
}
