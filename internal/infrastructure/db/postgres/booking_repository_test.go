package postgres

import (
	"database/sql"
	"strings"
	"testing"
	"time"
)

func TestEventRowToDomain(t *testing.T) {
	start := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)
	row := eventRow{
		ID:            7,
		Name:          "Launch",
		TypeID:        sql.NullInt64{Int64: 2, Valid: true},
		VenueID:       sql.NullInt64{Int64: 11, Valid: true},
		CustomerID:    sql.NullString{String: "cust-1", Valid: true},
		Status:        "pending",
		StartDateTime: sql.NullTime{Time: start, Valid: true},
		Guests:        sql.NullInt64{Int64: 40, Valid: true},
		Services:      sql.NullString{String: "catering,music", Valid: true},
	}

	e := row.toDomain()
	if e.VenueID == nil || *e.VenueID != 11 {
		t.Errorf("venue id = %v", e.VenueID)
	}
	if e.LikingScore != nil {
		t.Errorf("NULL liking score must stay nil, got %v", *e.LikingScore)
	}
	if e.StartDateTime == nil || !e.StartDateTime.Equal(start) {
		t.Errorf("start datetime = %v", e.StartDateTime)
	}
	if e.EndDateTime != nil || e.StartDate != nil {
		t.Error("NULL timestamps must map to nil")
	}
	if e.Guests != 40 || e.TypeID != 2 || e.CustomerID != "cust-1" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestEventColumnsMatchRowTags(t *testing.T) {
	for _, col := range []string{"event_desc", "venue_id", "vendor_id", "liking_score", "start_datetime", "services", "revenue"} {
		if !strings.Contains(eventColumns, col) {
			t.Errorf("eventColumns is missing %s", col)
		}
		if !strings.Contains(schemaDDL, "  "+col+" ") {
			t.Errorf("events table is missing column %s", col)
		}
	}
}
