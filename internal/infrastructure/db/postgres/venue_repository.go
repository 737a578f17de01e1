package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhub/account-service/internal/core/domain"
)

// VenueRepository writes the location hierarchy of a venue.
type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// InsertComponents upserts country, province and city, then inserts the
// address and the building. Nothing is written unless every step succeeds.
func (r *VenueRepository) InsertComponents(ctx context.Context, v domain.VenueComponents) (domain.VenueRef, error) {
	var ref domain.VenueRef
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var countryID, provinceID, cityID int64

		if err := tx.GetContext(ctx, &countryID,
			`INSERT INTO country (country_name) VALUES ($1)
			 ON CONFLICT (country_name) DO UPDATE SET country_name = EXCLUDED.country_name
			 RETURNING country_id`, v.Country); err != nil {
			return fmt.Errorf("upsert country: %w", err)
		}
		if err := tx.GetContext(ctx, &provinceID,
			`INSERT INTO province (province_name, country_id) VALUES ($1, $2)
			 ON CONFLICT (province_name, country_id) DO UPDATE SET province_name = EXCLUDED.province_name
			 RETURNING province_id`, v.Province, countryID); err != nil {
			return fmt.Errorf("upsert province: %w", err)
		}
		if err := tx.GetContext(ctx, &cityID,
			`INSERT INTO city (city_name, province_id, country_id) VALUES ($1, $2, $3)
			 ON CONFLICT (city_name, province_id, country_id) DO UPDATE SET city_name = EXCLUDED.city_name
			 RETURNING city_id`, v.City, provinceID, countryID); err != nil {
			return fmt.Errorf("upsert city: %w", err)
		}
		if err := tx.GetContext(ctx, &ref.AddressID,
			`INSERT INTO address (street_address, district, zip_code, city_id)
			 VALUES ($1, $2, $3, $4) RETURNING address_id`,
			v.StreetAddress, v.District, v.ZipCode, cityID); err != nil {
			return fmt.Errorf("insert address: %w", err)
		}
		if err := tx.GetContext(ctx, &ref.BuildingID,
			`INSERT INTO buildings (building_name, floor, address_id)
			 VALUES ($1, $2, $3) RETURNING building_id`,
			v.BuildingName, v.Floor, ref.AddressID); err != nil {
			return fmt.Errorf("insert building: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.VenueRef{}, err
	}
	return ref, nil
}
