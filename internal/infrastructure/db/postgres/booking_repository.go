package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/eventhub/account-service/internal/core/domain"
)

const eventColumns = `event_id, event_name, event_desc, event_type_id, venue_id, organizer_id,
	vendor_id, customer_id, event_status, start_date, end_date, guests, attire, budget,
	liking_score, start_datetime, end_datetime, services, revenue`

type eventRow struct {
	ID            int64           `db:"event_id"`
	Name          string          `db:"event_name"`
	Description   sql.NullString  `db:"event_desc"`
	TypeID        sql.NullInt64   `db:"event_type_id"`
	VenueID       sql.NullInt64   `db:"venue_id"`
	OrganizerID   sql.NullString  `db:"organizer_id"`
	VendorID      sql.NullString  `db:"vendor_id"`
	CustomerID    sql.NullString  `db:"customer_id"`
	Status        string          `db:"event_status"`
	StartDate     sql.NullTime    `db:"start_date"`
	EndDate       sql.NullTime    `db:"end_date"`
	Guests        sql.NullInt64   `db:"guests"`
	Attire        sql.NullString  `db:"attire"`
	Budget        sql.NullFloat64 `db:"budget"`
	LikingScore   sql.NullFloat64 `db:"liking_score"`
	StartDateTime sql.NullTime    `db:"start_datetime"`
	EndDateTime   sql.NullTime    `db:"end_datetime"`
	Services      sql.NullString  `db:"services"`
	Revenue       sql.NullFloat64 `db:"revenue"`
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func (r eventRow) toDomain() domain.Event {
	e := domain.Event{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description.String,
		TypeID:        r.TypeID.Int64,
		OrganizerID:   r.OrganizerID.String,
		VendorID:      r.VendorID.String,
		CustomerID:    r.CustomerID.String,
		Status:        r.Status,
		StartDate:     nullableTime(r.StartDate),
		EndDate:       nullableTime(r.EndDate),
		Guests:        int(r.Guests.Int64),
		Attire:        r.Attire.String,
		Budget:        r.Budget.Float64,
		StartDateTime: nullableTime(r.StartDateTime),
		EndDateTime:   nullableTime(r.EndDateTime),
		Services:      r.Services.String,
		Revenue:       r.Revenue.Float64,
	}
	if r.VenueID.Valid {
		id := r.VenueID.Int64
		e.VenueID = &id
	}
	if r.LikingScore.Valid {
		score := r.LikingScore.Float64
		e.LikingScore = &score
	}
	return e
}

func toEvents(rows []eventRow) []domain.Event {
	out := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

// BookingRepository reads and writes the events table.
type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListEventTypes(ctx context.Context) ([]domain.EventType, error) {
	var rows []struct {
		ID   int64  `db:"event_type_id"`
		Name string `db:"event_type_name"`
	}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT event_type_id, event_type_name FROM event_type ORDER BY event_type_id`); err != nil {
		return nil, fmt.Errorf("select event types: %w", err)
	}
	out := make([]domain.EventType, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.EventType{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Event, error) {
	var rows []eventRow
	query := `SELECT ` + eventColumns + ` FROM events WHERE customer_id = $1 ORDER BY start_date DESC NULLS LAST, event_id DESC`
	if err := r.db.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, fmt.Errorf("select customer events: %w", err)
	}
	return toEvents(rows), nil
}

// Create inserts the event and reads back the stored row, column defaults
// included.
func (r *BookingRepository) Create(ctx context.Context, e *domain.Event) error {
	var venueID sql.NullInt64
	if e.VenueID != nil {
		venueID = sql.NullInt64{Int64: *e.VenueID, Valid: true}
	}

	var row eventRow
	query := `INSERT INTO events (
		event_name, event_type_id, event_desc, venue_id, organizer_id, customer_id,
		start_date, end_date, guests, attire, budget, start_datetime, end_datetime,
		services, event_status
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + eventColumns
	err := r.db.GetContext(ctx, &row, query,
		e.Name, e.TypeID, e.Description, venueID, nullString(e.OrganizerID), e.CustomerID,
		e.StartDate, e.EndDate, e.Guests, e.Attire, e.Budget, e.StartDateTime, e.EndDateTime,
		e.Services, e.Status,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	*e = row.toDomain()
	return nil
}

func (r *BookingRepository) ListByStatus(ctx context.Context, statuses []string) ([]domain.Event, error) {
	lowered := make([]string, len(statuses))
	for i, s := range statuses {
		lowered[i] = strings.ToLower(s)
	}

	var rows []eventRow
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE LOWER(event_status) = ANY($1)
		ORDER BY start_datetime DESC NULLS LAST, event_id DESC`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(lowered)); err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	return toEvents(rows), nil
}
