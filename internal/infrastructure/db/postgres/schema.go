package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhub/account-service/internal/core/domain"
)

// schemaDDL is idempotent. Email uniqueness constraints are named so that a
// violation can be told apart from an identity key collision.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS role (
  role_id SERIAL PRIMARY KEY,
  role_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS account_identity (
  identity_key TEXT PRIMARY KEY,
  variant TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS customer_account_data (
  customer_id TEXT PRIMARY KEY REFERENCES account_identity(identity_key),
  customer_first_name TEXT,
  customer_last_name TEXT,
  customer_email TEXT NOT NULL,
  customer_password TEXT,
  customer_phone_no TEXT,
  preferences JSONB NOT NULL DEFAULT '[]'::jsonb,
  customer_type TEXT,
  role_id INTEGER NOT NULL REFERENCES role(role_id),
  is_verified BOOLEAN NOT NULL DEFAULT false,
  verification_status TEXT NOT NULL DEFAULT 'pending',
  verified_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  CONSTRAINT uq_customer_email UNIQUE (customer_email)
);

CREATE TABLE IF NOT EXISTS vendor_account_data (
  vendor_id TEXT PRIMARY KEY REFERENCES account_identity(identity_key),
  vendor_business_name TEXT,
  vendor_email TEXT NOT NULL,
  vendor_password TEXT,
  vendor_type TEXT,
  vendor_phone_no TEXT,
  services TEXT,
  preferences JSONB NOT NULL DEFAULT '[]'::jsonb,
  role_id INTEGER NOT NULL REFERENCES role(role_id),
  is_verified BOOLEAN NOT NULL DEFAULT false,
  verification_status TEXT NOT NULL DEFAULT 'pending',
  verified_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  CONSTRAINT uq_vendor_email UNIQUE (vendor_email)
);

CREATE TABLE IF NOT EXISTS event_organizer_account_data (
  organizer_id TEXT PRIMARY KEY REFERENCES account_identity(identity_key),
  organizer_company_name TEXT,
  organizer_industry TEXT,
  organizer_location TEXT,
  organizer_email TEXT NOT NULL,
  organizer_review_rating DOUBLE PRECISION,
  organizer_password TEXT,
  organizer_logo_url TEXT,
  organizer_type TEXT,
  role_id INTEGER NOT NULL REFERENCES role(role_id),
  is_verified BOOLEAN NOT NULL DEFAULT false,
  verification_status TEXT NOT NULL DEFAULT 'pending',
  verified_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  CONSTRAINT uq_organizer_email UNIQUE (organizer_email)
);

CREATE TABLE IF NOT EXISTS super_admin_account_data (
  admin_id TEXT PRIMARY KEY,
  admin_email TEXT NOT NULL UNIQUE,
  admin_name TEXT,
  admin_permissions TEXT,
  admin_password TEXT,
  is_active BOOLEAN NOT NULL DEFAULT true,
  last_login_timestamp TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS admin_actions (
  action_id BIGSERIAL PRIMARY KEY,
  admin_id TEXT NOT NULL,
  action_type TEXT NOT NULL,
  target_id TEXT,
  action_details TEXT,
  timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_verification_requests (
  verification_id BIGSERIAL PRIMARY KEY,
  user_id TEXT NOT NULL,
  user_type TEXT NOT NULL,
  documents_submitted TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  admin_notes TEXT,
  reviewed_by TEXT,
  reviewed_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS event_type (
  event_type_id SERIAL PRIMARY KEY,
  event_type_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS events (
  event_id BIGSERIAL PRIMARY KEY,
  event_name TEXT NOT NULL,
  event_desc TEXT,
  event_type_id INTEGER,
  venue_id BIGINT,
  start_date TIMESTAMPTZ,
  end_date TIMESTAMPTZ,
  start_datetime TIMESTAMPTZ,
  end_datetime TIMESTAMPTZ,
  event_status TEXT NOT NULL DEFAULT 'scheduled',
  customer_id TEXT,
  organizer_id TEXT,
  vendor_id TEXT,
  guests INTEGER NOT NULL DEFAULT 0,
  attire TEXT,
  budget NUMERIC(12,2) NOT NULL DEFAULT 0,
  liking_score NUMERIC(5,2),
  services TEXT,
  revenue NUMERIC(12,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS event_cancellation_requests (
  cancellation_id BIGSERIAL PRIMARY KEY,
  event_id BIGINT NOT NULL REFERENCES events(event_id),
  requested_by TEXT NOT NULL,
  reason TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  refund_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
  penalty_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
  admin_notes TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS country (
  country_id SERIAL PRIMARY KEY,
  country_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS province (
  province_id SERIAL PRIMARY KEY,
  province_name TEXT NOT NULL,
  country_id INTEGER NOT NULL REFERENCES country(country_id),
  UNIQUE (province_name, country_id)
);

CREATE TABLE IF NOT EXISTS city (
  city_id SERIAL PRIMARY KEY,
  city_name TEXT NOT NULL,
  province_id INTEGER NOT NULL REFERENCES province(province_id),
  country_id INTEGER NOT NULL REFERENCES country(country_id),
  UNIQUE (city_name, province_id, country_id)
);

CREATE TABLE IF NOT EXISTS address (
  address_id BIGSERIAL PRIMARY KEY,
  street_address TEXT NOT NULL,
  district TEXT NOT NULL,
  zip_code TEXT NOT NULL,
  city_id INTEGER NOT NULL REFERENCES city(city_id)
);

CREATE TABLE IF NOT EXISTS buildings (
  building_id BIGSERIAL PRIMARY KEY,
  building_name TEXT NOT NULL,
  floor TEXT NOT NULL,
  address_id BIGINT NOT NULL REFERENCES address(address_id)
);

CREATE INDEX IF NOT EXISTS idx_uvr_reviewed_at ON user_verification_requests(reviewed_at);
CREATE INDEX IF NOT EXISTS idx_ecr_status ON event_cancellation_requests(status);
CREATE INDEX IF NOT EXISTS idx_events_customer ON events(customer_id);
`

// seedRoles are the role names every account variant resolves against.
var seedRoles = []string{
	domain.VariantCustomer.RoleName(),
	domain.VariantVendor.RoleName(),
	domain.VariantOrganizer.RoleName(),
	domain.VariantSuperAdmin.RoleName(),
}

// EnsureSchema creates the tables if they do not exist and seeds the role
// directory. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	for _, name := range seedRoles {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO role (role_name) VALUES ($1) ON CONFLICT (role_name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}
