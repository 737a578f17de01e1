package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/pkg/logger"
)

// variantTable names the columns of one account table. An empty column means
// the variant does not store that attribute.
type variantTable struct {
	table        string
	key          string
	email        string
	password     string
	subtype      string
	phone        string
	firstName    string
	lastName     string
	businessName string
	companyName  string
	industry     string
	location     string
	logoURL      string
	services     string
	preferences  string
	reviewRating string
}

var variantTables = map[domain.Variant]variantTable{
	domain.VariantCustomer: {
		table:       "customer_account_data",
		key:         "customer_id",
		email:       "customer_email",
		password:    "customer_password",
		subtype:     "customer_type",
		phone:       "customer_phone_no",
		firstName:   "customer_first_name",
		lastName:    "customer_last_name",
		preferences: "preferences",
	},
	domain.VariantVendor: {
		table:        "vendor_account_data",
		key:          "vendor_id",
		email:        "vendor_email",
		password:     "vendor_password",
		subtype:      "vendor_type",
		phone:        "vendor_phone_no",
		businessName: "vendor_business_name",
		services:     "services",
		preferences:  "preferences",
	},
	domain.VariantOrganizer: {
		table:        "event_organizer_account_data",
		key:          "organizer_id",
		email:        "organizer_email",
		password:     "organizer_password",
		subtype:      "organizer_type",
		companyName:  "organizer_company_name",
		industry:     "organizer_industry",
		location:     "organizer_location",
		logoURL:      "organizer_logo_url",
		reviewRating: "organizer_review_rating",
	},
}

func tableFor(v domain.Variant) (variantTable, error) {
	t, ok := variantTables[v]
	if !ok {
		return variantTable{}, fmt.Errorf("unknown account variant %q", v)
	}
	return t, nil
}

// selectList projects the variant's columns onto the common aliases scanned
// by accountRow. Missing attributes are selected as typed NULLs.
func (t variantTable) selectList() string {
	col := func(name, alias, nullType string) string {
		if name == "" {
			return "NULL::" + nullType + " AS " + alias
		}
		return name + " AS " + alias
	}
	prefs := t.preferences
	if prefs != "" {
		prefs += "::text"
	}
	return strings.Join([]string{
		t.key + " AS identity_key",
		t.email + " AS email",
		t.password + " AS password_hash",
		"role_id::text AS role_id",
		t.subtype + " AS subtype",
		col(t.phone, "phone", "text"),
		col(t.firstName, "first_name", "text"),
		col(t.lastName, "last_name", "text"),
		col(t.businessName, "business_name", "text"),
		col(t.companyName, "company_name", "text"),
		col(t.industry, "industry", "text"),
		col(t.location, "location", "text"),
		col(t.logoURL, "logo_url", "text"),
		col(t.services, "services", "text"),
		col(prefs, "preferences", "text"),
		col(t.reviewRating, "review_rating", "float8"),
		"is_verified",
		"verification_status",
		"verified_at",
		"created_at",
	}, ", ")
}

// insertColumns returns the column names and values for a new row of a.
func (t variantTable) insertColumns(a *domain.Account) ([]string, []any, error) {
	cols := []string{t.key, t.email, t.password, t.subtype, "role_id", "verification_status"}
	vals := []any{a.IdentityKey, a.Email, nullString(a.PasswordHash), nullString(a.Subtype), a.RoleID, verificationStatus(a.Verification)}

	add := func(col, value string) {
		if col == "" {
			return
		}
		cols = append(cols, col)
		vals = append(vals, nullString(value))
	}
	add(t.phone, a.Profile.Phone)
	add(t.firstName, a.Profile.FirstName)
	add(t.lastName, a.Profile.LastName)
	add(t.businessName, a.Profile.BusinessName)
	add(t.companyName, a.Profile.CompanyName)
	add(t.industry, a.Profile.Industry)
	add(t.location, a.Profile.Location)
	add(t.logoURL, a.Profile.LogoURL)
	add(t.services, a.Profile.Services)

	if t.preferences != "" {
		prefs := a.Profile.Preferences
		if prefs == nil {
			prefs = []string{}
		}
		raw, err := json.Marshal(prefs)
		if err != nil {
			return nil, nil, fmt.Errorf("encode preferences: %w", err)
		}
		cols = append(cols, t.preferences)
		// lib/pq encodes []byte as bytea; JSONB needs the text form.
		vals = append(vals, string(raw))
	}
	if !a.CreatedAt.IsZero() {
		cols = append(cols, "created_at")
		vals = append(vals, a.CreatedAt)
	}
	return cols, vals, nil
}

func verificationStatus(v domain.Verification) string {
	if v.Status == "" {
		return domain.VerificationPending
	}
	return v.Status
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func placeholders(n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(p, ", ")
}

type accountRow struct {
	IdentityKey        string          `db:"identity_key"`
	Email              string          `db:"email"`
	PasswordHash       sql.NullString  `db:"password_hash"`
	RoleID             sql.NullString  `db:"role_id"`
	Subtype            sql.NullString  `db:"subtype"`
	Phone              sql.NullString  `db:"phone"`
	FirstName          sql.NullString  `db:"first_name"`
	LastName           sql.NullString  `db:"last_name"`
	BusinessName       sql.NullString  `db:"business_name"`
	CompanyName        sql.NullString  `db:"company_name"`
	Industry           sql.NullString  `db:"industry"`
	Location           sql.NullString  `db:"location"`
	LogoURL            sql.NullString  `db:"logo_url"`
	Services           sql.NullString  `db:"services"`
	Preferences        sql.NullString  `db:"preferences"`
	ReviewRating       sql.NullFloat64 `db:"review_rating"`
	IsVerified         bool            `db:"is_verified"`
	VerificationStatus string          `db:"verification_status"`
	VerifiedAt         sql.NullTime    `db:"verified_at"`
	CreatedAt          time.Time       `db:"created_at"`
}

func (r accountRow) toDomain(v domain.Variant, log zerolog.Logger) *domain.Account {
	a := &domain.Account{
		IdentityKey:  r.IdentityKey,
		Variant:      v,
		Email:        r.Email,
		PasswordHash: r.PasswordHash.String,
		RoleID:       r.RoleID.String,
		Subtype:      r.Subtype.String,
		Profile: domain.Profile{
			FirstName:    r.FirstName.String,
			LastName:     r.LastName.String,
			BusinessName: r.BusinessName.String,
			CompanyName:  r.CompanyName.String,
			Industry:     r.Industry.String,
			Location:     r.Location.String,
			LogoURL:      r.LogoURL.String,
			Phone:        r.Phone.String,
			Services:     r.Services.String,
		},
		Verification: domain.Verification{
			IsVerified: r.IsVerified,
			Status:     r.VerificationStatus,
		},
		CreatedAt: r.CreatedAt,
	}
	if r.Preferences.Valid && r.Preferences.String != "" {
		// Rows written by older clients may hold a non-array value.
		if err := json.Unmarshal([]byte(r.Preferences.String), &a.Profile.Preferences); err != nil {
			a.Profile.Preferences = nil
			log.Debug().Err(err).
				Str("identity_key", r.IdentityKey).
				Str("variant", string(v)).
				Msg("ignoring undecodable preferences")
		}
	}
	if r.ReviewRating.Valid {
		rating := r.ReviewRating.Float64
		a.Profile.ReviewRating = &rating
	}
	if r.VerifiedAt.Valid {
		at := r.VerifiedAt.Time
		a.Verification.VerifiedAt = &at
	}
	return a
}

// AccountRepository is the Postgres credential store.
type AccountRepository struct {
	db  *sqlx.DB
	log zerolog.Logger
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db, log: logger.For("postgres")}
}

func (r *AccountRepository) findOne(ctx context.Context, v domain.Variant, where string, args ...any) (*domain.Account, error) {
	t, err := tableFor(v)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIMIT 1`, t.selectList(), t.table, where)

	var row accountRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if err = translateError(err, domain.ErrAccountNotFound); errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find %s account: %w", v, err)
	}
	return row.toDomain(v, r.log), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, v domain.Variant, email string) (*domain.Account, error) {
	t, err := tableFor(v)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, v, t.email+" = $1", email)
}

func (r *AccountRepository) FindByKey(ctx context.Context, v domain.Variant, key string) (*domain.Account, error) {
	t, err := tableFor(v)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, v, t.key+" = $1", key)
}

// FindByKeyOrEmail prefers a row matching the key over one matching only the email.
func (r *AccountRepository) FindByKeyOrEmail(ctx context.Context, v domain.Variant, key, email string) (*domain.Account, error) {
	t, err := tableFor(v)
	if err != nil {
		return nil, err
	}
	where := fmt.Sprintf(
		"($1 <> '' AND %[1]s = $1) OR ($2 <> '' AND %[2]s = $2) ORDER BY (%[1]s = $1) DESC",
		t.key, t.email)
	return r.findOne(ctx, v, where, key, email)
}

// Create claims the identity key in account_identity and inserts the variant
// row in the same transaction.
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	t, err := tableFor(a.Variant)
	if err != nil {
		return err
	}
	cols, vals, err := t.insertColumns(a)
	if err != nil {
		return err
	}
	insert := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		t.table, strings.Join(cols, ", "), placeholders(len(cols)))

	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO account_identity (identity_key, variant) VALUES ($1, $2)`,
			a.IdentityKey, string(a.Variant)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insert, vals...)
		return err
	})
	if err != nil {
		if err = translateError(err, nil); errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrIdentityTaken) {
			return err
		}
		return fmt.Errorf("create %s account: %w", a.Variant, err)
	}
	return nil
}

func (r *AccountRepository) SetVerification(ctx context.Context, v domain.Variant, key string, ver domain.Verification) error {
	t, err := tableFor(v)
	if err != nil {
		return err
	}
	var verifiedAt sql.NullTime
	if ver.VerifiedAt != nil {
		verifiedAt = sql.NullTime{Time: *ver.VerifiedAt, Valid: true}
	}
	query := fmt.Sprintf(
		`UPDATE %s SET is_verified = $1, verification_status = $2, verified_at = $3 WHERE %s = $4`,
		t.table, t.key)

	res, err := r.db.ExecContext(ctx, query, ver.IsVerified, verificationStatus(ver), verifiedAt, key)
	if err != nil {
		return fmt.Errorf("set %s verification: %w", v, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set %s verification: %w", v, err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

type summaryRow struct {
	ID         string         `db:"id"`
	Email      string         `db:"email"`
	Name       sql.NullString `db:"name"`
	IsVerified bool           `db:"is_verified"`
	Status     string         `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
}

// nameExpr is the display name column expression for the admin listing.
func (t variantTable) nameExpr() string {
	switch {
	case t.firstName != "":
		return fmt.Sprintf("TRIM(CONCAT(%s, ' ', %s))", t.firstName, t.lastName)
	case t.businessName != "":
		return t.businessName
	default:
		return t.companyName
	}
}

// List returns every customer, vendor and organizer, newest first within each variant.
func (r *AccountRepository) List(ctx context.Context) ([]domain.UserSummary, error) {
	var out []domain.UserSummary
	for _, v := range domain.ResolutionOrder {
		t := variantTables[v]
		query := fmt.Sprintf(`
SELECT %s AS id, %s AS email, %s AS name,
       COALESCE(is_verified, false) AS is_verified,
       COALESCE(verification_status, 'pending') AS status,
       created_at
FROM %s
ORDER BY created_at DESC`, t.key, t.email, t.nameExpr(), t.table)

		var rows []summaryRow
		if err := r.db.SelectContext(ctx, &rows, query); err != nil {
			return nil, fmt.Errorf("list %s accounts: %w", v, err)
		}
		for _, row := range rows {
			out = append(out, domain.UserSummary{
				ID:         row.ID,
				Email:      row.Email,
				Name:       row.Name.String,
				UserType:   v.ListingType(),
				IsVerified: row.IsVerified,
				Status:     row.Status,
				CreatedAt:  row.CreatedAt,
			})
		}
	}
	return out, nil
}
