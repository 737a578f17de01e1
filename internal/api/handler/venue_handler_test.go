package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/eventhub/account-service/internal/core/domain"
)

const venueBody = `{"buildingName":"Hall A","floor":"2","zipCode":"10001","streetAddress":"1 Main St",` +
	`"district":"Central","city":"Springfield","province":"North","country":"Freedonia"}`

func TestVenueHandler_InsertComponents(t *testing.T) {
	stub := &stubVenues{}
	h := NewVenueHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/insert-venue-components", venueBody)
	if err := h.InsertComponents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp venueComponentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AddressID != 11 || resp.BuildingID != 12 {
		t.Fatalf("unexpected ids: %+v", resp)
	}
	if stub.got.Country != "Freedonia" || stub.got.BuildingName != "Hall A" {
		t.Fatalf("unexpected components: %+v", stub.got)
	}
}

func TestVenueHandler_InsertComponents_ServiceError(t *testing.T) {
	h := NewVenueHandler(&stubVenues{err: domain.MissingFields("floor")})

	c, _ := newJSONContext(http.MethodPost, "/api/insert-venue-components", venueBody)
	if err := h.InsertComponents(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
