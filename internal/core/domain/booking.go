package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventStatusPending is the status every newly created event starts in.
const EventStatusPending = "pending"

// Booking board columns. Stored event statuses match them case-insensitively.
const (
	BookingPending  = "Pending"
	BookingUpcoming = "Upcoming"
	BookingPast     = "Past"
	BookingRejected = "Rejected"
	BookingDraft    = "Draft"
)

// BookingStatuses lists the board columns in display order.
var BookingStatuses = []string{BookingPending, BookingUpcoming, BookingPast, BookingRejected, BookingDraft}

// BookingColumn returns the board column for a stored event status, or ""
// when the status is not shown on the board.
func BookingColumn(status string) string {
	status = strings.TrimSpace(status)
	for _, s := range BookingStatuses {
		if strings.EqualFold(s, status) {
			return s
		}
	}
	return ""
}

// EventType is one row of the event type catalogue.
type EventType struct {
	ID   int64  `json:"event_type_id"`
	Name string `json:"event_type_name"`
}

// Event is a customer's booked event. Services holds the stored
// comma-separated list.
type Event struct {
	ID            int64      `json:"event_id"`
	Name          string     `json:"event_name"`
	Description   string     `json:"event_desc"`
	TypeID        int64      `json:"event_type_id"`
	VenueID       *int64     `json:"venue_id"`
	OrganizerID   string     `json:"organizer_id,omitempty"`
	VendorID      string     `json:"vendor_id,omitempty"`
	CustomerID    string     `json:"customer_id"`
	Status        string     `json:"event_status"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Guests        int        `json:"guests"`
	Attire        string     `json:"attire"`
	Budget        float64    `json:"budget"`
	LikingScore   *float64   `json:"liking_score"`
	StartDateTime *time.Time `json:"start_datetime"`
	EndDateTime   *time.Time `json:"end_datetime"`
	Services      string     `json:"services"`
	Revenue       float64    `json:"revenue"`
}

// Booking is an event as rendered on the bookings board.
type Booking struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"event_status"`
	TypeID        int64      `json:"event_type_id"`
	Description   string     `json:"event_desc"`
	VenueID       *int64     `json:"venue_id"`
	OrganizerID   string     `json:"organizer_id"`
	VendorID      string     `json:"vendor_id"`
	Customer      string     `json:"customer"`
	Location      string     `json:"location"`
	Guests        string     `json:"guests"`
	Attire        string     `json:"attire"`
	Budget        float64    `json:"budget"`
	LikingScore   *float64   `json:"liking_score"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Date          string     `json:"date"`
	Day           string     `json:"day"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	StartDateTime *time.Time `json:"start_datetime"`
	EndDateTime   *time.Time `json:"end_datetime"`
}

// NewBooking renders e for the board column it belongs to.
func NewBooking(e Event, column string) Booking {
	b := Booking{
		ID:            e.ID,
		Title:         e.Name,
		Status:        column,
		TypeID:        e.TypeID,
		Description:   e.Description,
		VenueID:       e.VenueID,
		OrganizerID:   e.OrganizerID,
		VendorID:      e.VendorID,
		Customer:      "Customer " + e.CustomerID,
		Location:      "Location unknown",
		Guests:        fmt.Sprintf("%d Guests", e.Guests),
		Attire:        e.Attire,
		Budget:        e.Budget,
		LikingScore:   e.LikingScore,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Date:          "Unknown",
		Day:           "Unknown",
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
	}
	if e.VenueID != nil {
		b.Location = fmt.Sprintf("Location %d", *e.VenueID)
	}
	if e.StartDateTime != nil {
		b.Date = e.StartDateTime.Format("Jan 02")
		b.Day = e.StartDateTime.Weekday().String()
		b.StartTime = e.StartDateTime.Format("03:04 PM")
	}
	if e.EndDateTime != nil {
		b.EndTime = e.EndDateTime.Format("03:04 PM")
	}
	return b
}

// BookingBoard groups bookings by column. Every column is present, empty or not.
type BookingBoard map[string][]Booking

// NewBookingBoard returns a board with every column initialised.
func NewBookingBoard() BookingBoard {
	b := make(BookingBoard, len(BookingStatuses))
	for _, s := range BookingStatuses {
		b[s] = []Booking{}
	}
	return b
}

// Add places e in its column. Events whose status has no column are skipped.
func (b BookingBoard) Add(e Event) bool {
	column := BookingColumn(e.Status)
	if column == "" {
		return false
	}
	b[column] = append(b[column], NewBooking(e, column))
	return true
}
