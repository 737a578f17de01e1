package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
	"github.com/eventhub/account-service/internal/pkg/sanitize"
)

type bookingService struct {
	events   ports.BookingRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(events ports.BookingRepository, accounts ports.AccountRepository, log zerolog.Logger) ports.BookingService {
	return &bookingService{events: events, accounts: accounts, log: log}
}

func (s *bookingService) EventTypes(ctx context.Context) ([]domain.EventType, error) {
	types, err := s.events.ListEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	if types == nil {
		types = []domain.EventType{}
	}
	return types, nil
}

func (s *bookingService) CustomerEvents(ctx context.Context, customerID string) ([]domain.Event, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, domain.MissingFields("userId")
	}
	if _, err := s.accounts.FindByKey(ctx, domain.VariantCustomer, customerID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	events, err := s.events.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

// CreateEvent validates the booking, checks the customer exists and stores
// the event as pending.
func (s *bookingService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	e := &domain.Event{
		Name:        sanitize.Text(in.Name),
		Description: sanitize.Text(in.Overview),
		VenueID:     in.VenueID,
		OrganizerID: strings.TrimSpace(in.OrganizerID),
		CustomerID:  strings.TrimSpace(in.CustomerID),
		Status:      domain.EventStatusPending,
		Attire:      sanitize.Text(in.Attire),
		Services:    strings.Join(sanitize.Strings(in.Services), ","),
	}

	var missing []string
	if e.CustomerID == "" {
		missing = append(missing, "customerId")
	}
	if e.Name == "" {
		missing = append(missing, "eventName")
	}
	if strings.TrimSpace(in.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(in.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	if in.Guests == nil {
		missing = append(missing, "guests")
	}
	if in.Budget == nil {
		missing = append(missing, "budget")
	}
	if in.EventTypeID == nil {
		missing = append(missing, "eventTypeId")
	}
	if len(missing) > 0 {
		return nil, domain.MissingFields(missing...)
	}

	start, err := parseMoment(in.StartDate, in.StartTime)
	if err != nil {
		return nil, domain.NewValidationError("invalid start date or time", "startDate")
	}
	end, err := parseMoment(in.EndDate, in.EndTime)
	if err != nil {
		return nil, domain.NewValidationError("invalid end date or time", "endDate")
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("event cannot end before it starts", "endDate")
	}
	if *in.Guests < 0 {
		return nil, domain.NewValidationError("guests cannot be negative", "guests")
	}
	if *in.Budget < 0 {
		return nil, domain.NewValidationError("budget cannot be negative", "budget")
	}
	if *in.EventTypeID < 0 {
		return nil, domain.NewValidationError("invalid event type", "eventTypeId")
	}

	startDay, endDay := dayOf(start), dayOf(end)
	e.StartDate, e.EndDate = &startDay, &endDay
	e.StartDateTime, e.EndDateTime = &start, &end
	e.Guests = *in.Guests
	e.Budget = *in.Budget
	e.TypeID = *in.EventTypeID

	if _, err := s.accounts.FindByKey(ctx, domain.VariantCustomer, e.CustomerID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.NewValidationError("Customer not found in database", "customerId")
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.log.Info().
		Int64("event_id", e.ID).
		Str("customer_id", e.CustomerID).
		Msg("event created")
	return e, nil
}

// Bookings returns every board event grouped by column.
func (s *bookingService) Bookings(ctx context.Context) (domain.BookingBoard, error) {
	events, err := s.events.ListByStatus(ctx, domain.BookingStatuses)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	board := domain.NewBookingBoard()
	for _, e := range events {
		board.Add(e)
	}
	return board, nil
}

var (
	dateLayouts     = []string{"2006-01-02", time.RFC3339}
	dateTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}
)

// parseMoment combines a date with an optional time of day, in UTC.
func parseMoment(date, clock string) (time.Time, error) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	value, layouts := date, dateLayouts
	if clock != "" {
		value, layouts = date+"T"+clock, dateTimeLayouts
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
