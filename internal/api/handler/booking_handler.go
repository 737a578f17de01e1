package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/metrics"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// EventTypes lists the event type catalogue.
//
// @Summary      List event types
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.EventType
// @Failure      500  {object}  errorResponse
// @Router       /api/event-types [get]
func (h *BookingHandler) EventTypes(c echo.Context) error {
	types, err := h.bookings.EventTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// CustomerEvents lists a customer's events, newest first. Customers may only
// list their own.
//
// @Summary      List a customer's events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Customer identity key"
// @Success      200     {array}   domain.Event
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/events/user/{userId} [get]
func (h *BookingHandler) CustomerEvents(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	userID := c.Param("userId")
	if err := ownsCustomerData(session, userID); err != nil {
		return err
	}

	events, err := h.bookings.CustomerEvents(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent books a new event for a customer.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      201   {object}  createEventResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/events [post]
func (h *BookingHandler) CreateEvent(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req createEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := ownsCustomerData(session, req.CustomerID); err != nil {
		return err
	}

	event, err := h.bookings.CreateEvent(c.Request().Context(), ports.CreateEventInput{
		Name:        req.EventName,
		Overview:    req.EventOverview,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Guests:      req.Guests.intPtr(),
		Budget:      req.Budget.floatPtr(),
		EventTypeID: req.EventTypeID.int64Ptr(),
		Attire:      req.Attire,
		Services:    req.Services,
		CustomerID:  req.CustomerID,
		OrganizerID: req.OrganizerID,
		VenueID:     req.VenueID.int64Ptr(),
	})
	metrics.EventsCreatedTotal.WithLabelValues(eventResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createEventResponse{
		Success: true,
		Message: "Event created successfully",
		Event:   *event,
	})
}

// Bookings groups board events by status. Every status key is present.
//
// @Summary      List bookings by status
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Booking
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) Bookings(c echo.Context) error {
	board, err := h.bookings.Bookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// ownsCustomerData stops a customer session from touching another
// customer's events. Other roles are not restricted.
func ownsCustomerData(session *domain.Session, customerID string) error {
	if session.Variant == domain.VariantCustomer && customerID != "" && customerID != session.IdentityKey {
		return domain.ErrForbidden
	}
	return nil
}

func eventResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
