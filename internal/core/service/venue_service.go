package service

import (
	"context"
	"fmt"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
	"github.com/eventhub/account-service/internal/pkg/sanitize"
)

type venueService struct {
	repo ports.VenueRepository
}

// NewVenueService returns a VenueService implementation.
func NewVenueService(repo ports.VenueRepository) ports.VenueService {
	return &venueService{repo: repo}
}

// InsertComponents cleans every field, rejects empty ones and writes the
// venue as a single unit.
func (s *venueService) InsertComponents(ctx context.Context, v domain.VenueComponents) (domain.VenueRef, error) {
	v = domain.VenueComponents{
		BuildingName:  sanitize.Text(v.BuildingName),
		Floor:         sanitize.Text(v.Floor),
		ZipCode:       sanitize.Text(v.ZipCode),
		StreetAddress: sanitize.Text(v.StreetAddress),
		District:      sanitize.Text(v.District),
		City:          sanitize.Text(v.City),
		Province:      sanitize.Text(v.Province),
		Country:       sanitize.Text(v.Country),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"buildingName", v.BuildingName},
		{"floor", v.Floor},
		{"zipCode", v.ZipCode},
		{"streetAddress", v.StreetAddress},
		{"district", v.District},
		{"city", v.City},
		{"province", v.Province},
		{"country", v.Country},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.VenueRef{}, domain.MissingFields(missing...)
	}

	ref, err := s.repo.InsertComponents(ctx, v)
	if err != nil {
		return domain.VenueRef{}, fmt.Errorf("insert venue components: %w", err)
	}
	return ref, nil
}
