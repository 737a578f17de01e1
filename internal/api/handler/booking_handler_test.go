package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/core/domain"
)

var customerSession = &domain.Session{ID: "s1", IdentityKey: "cust-1", Variant: domain.VariantCustomer, Role: "customer"}

const eventBody = `{"eventName":"Birthday","eventOverview":"Dinner","startDate":"2026-06-12","endDate":"2026-06-12",` +
	`"startTime":"18:00","endTime":"22:00","guests":"40","budget":1500.5,"eventTypeId":0,` +
	`"services":["catering"],"customerId":"cust-1","venueId":null}`

func TestBookingHandler_CreateEvent(t *testing.T) {
	stub := &stubBookings{}
	h := NewBookingHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/events", eventBody)
	withSession(c, customerSession)
	if err := h.CreateEvent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createEventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Message != "Event created successfully" || resp.Event.ID != 9 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	in := stub.created
	if in.Guests == nil || *in.Guests != 40 {
		t.Errorf("numeric string guests not decoded: %v", in.Guests)
	}
	if in.Budget == nil || *in.Budget != 1500.5 {
		t.Errorf("budget = %v", in.Budget)
	}
	if in.EventTypeID == nil || *in.EventTypeID != 0 {
		t.Errorf("event type id 0 must be passed through, got %v", in.EventTypeID)
	}
	if in.VenueID != nil {
		t.Errorf("null venue id must stay unset, got %v", *in.VenueID)
	}
}

func TestBookingHandler_CreateEvent_MissingNumbersStayUnset(t *testing.T) {
	stub := &stubBookings{}
	h := NewBookingHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/api/events", `{"eventName":"x","customerId":"cust-1","guests":""}`)
	withSession(c, customerSession)
	if err := h.CreateEvent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.created.Guests != nil || stub.created.Budget != nil || stub.created.EventTypeID != nil {
		t.Fatalf("absent numbers must be nil: %+v", stub.created)
	}
}

func TestBookingHandler_CreateEvent_BadNumber(t *testing.T) {
	h := NewBookingHandler(&stubBookings{})

	c, _ := newJSONContext(http.MethodPost, "/api/events", `{"eventName":"x","customerId":"cust-1","guests":"many"}`)
	withSession(c, customerSession)

	var he *echo.HTTPError
	if err := h.CreateEvent(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_CustomerCannotBookForOthers(t *testing.T) {
	stub := &stubBookings{}
	h := NewBookingHandler(stub)

	body := `{"eventName":"x","customerId":"cust-2"}`
	c, _ := newJSONContext(http.MethodPost, "/api/events", body)
	withSession(c, customerSession)
	if err := h.CreateEvent(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if stub.created.CustomerID != "" {
		t.Fatal("service must not be called")
	}

	organizer := &domain.Session{ID: "s2", IdentityKey: "org-1", Variant: domain.VariantOrganizer, Role: "organizer"}
	c, _ = newJSONContext(http.MethodPost, "/api/events", body)
	withSession(c, organizer)
	if err := h.CreateEvent(c); err != nil {
		t.Fatalf("organizer booking for a customer: %v", err)
	}
}

func TestBookingHandler_CustomerEvents(t *testing.T) {
	stub := &stubBookings{}
	h := NewBookingHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/api/events/user/cust-1", "")
	c.SetParamNames("userId")
	c.SetParamValues("cust-1")
	withSession(c, customerSession)
	if err := h.CustomerEvents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.customerID != "cust-1" {
		t.Fatalf("service got %q", stub.customerID)
	}

	var events []domain.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(events) != 1 || events[0].ID != 5 {
		t.Fatalf("unexpected events: %+v", events)
	}

	c, _ = newJSONContext(http.MethodGet, "/api/events/user/cust-2", "")
	c.SetParamNames("userId")
	c.SetParamValues("cust-2")
	withSession(c, customerSession)
	if err := h.CustomerEvents(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookingHandler_CustomerEvents_NotFound(t *testing.T) {
	h := NewBookingHandler(&stubBookings{err: domain.ErrAccountNotFound})

	c, _ := newJSONContext(http.MethodGet, "/api/events/user/cust-1", "")
	c.SetParamNames("userId")
	c.SetParamValues("cust-1")
	withSession(c, customerSession)
	if err := h.CustomerEvents(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestBookingHandler_Bookings(t *testing.T) {
	h := NewBookingHandler(&stubBookings{})

	c, rec := newJSONContext(http.MethodGet, "/api/bookings", "")
	if err := h.Bookings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var board map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &board); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, column := range domain.BookingStatuses {
		if _, ok := board[column]; !ok {
			t.Errorf("column %s missing", column)
		}
	}
	upcoming := board[domain.BookingUpcoming]
	if len(upcoming) != 1 || upcoming[0]["customer"] != "Customer cust-1" || upcoming[0]["event_status"] != "Upcoming" {
		t.Fatalf("unexpected upcoming column: %v", upcoming)
	}
}

func TestBookingHandler_EventTypes(t *testing.T) {
	h := NewBookingHandler(&stubBookings{})

	c, rec := newJSONContext(http.MethodGet, "/api/event-types", "")
	if err := h.EventTypes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var types []domain.EventType
	if err := json.Unmarshal(rec.Body.Bytes(), &types); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(types) != 1 || types[0].Name != "Wedding" {
		t.Fatalf("unexpected types: %+v", types)
	}
}
