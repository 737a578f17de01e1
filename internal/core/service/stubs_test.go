package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Account store
// ---------------------------------------------------------------------------

// stubAccountRepo mimics the credential store: email is unique per variant and
// the identity key is unique across variants.
type stubAccountRepo struct {
	rows     map[domain.Variant]map[string]*domain.Account
	owners   map[string]domain.Variant
	findErr  error
	createFn func(*domain.Account) error
	creates  int
	searched []domain.Variant
	verified []domain.Variant
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		rows:   make(map[domain.Variant]map[string]*domain.Account),
		owners: make(map[string]domain.Variant),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

// seed inserts a row directly, bypassing the identity key guard so tests can
// build states that the real store would reject.
func (r *stubAccountRepo) seed(a *domain.Account) {
	if r.rows[a.Variant] == nil {
		r.rows[a.Variant] = make(map[string]*domain.Account)
	}
	r.rows[a.Variant][a.IdentityKey] = cloneAccount(a)
	r.owners[a.IdentityKey] = a.Variant
}

func (r *stubAccountRepo) find(variant domain.Variant, match func(*domain.Account) bool) (*domain.Account, error) {
	r.searched = append(r.searched, variant)
	if r.findErr != nil {
		return nil, r.findErr
	}
	keys := make([]string, 0, len(r.rows[variant]))
	for k := range r.rows[variant] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if a := r.rows[variant][k]; match(a) {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, v domain.Variant, email string) (*domain.Account, error) {
	return r.find(v, func(a *domain.Account) bool { return a.Email == email })
}

func (r *stubAccountRepo) FindByKey(_ context.Context, v domain.Variant, key string) (*domain.Account, error) {
	return r.find(v, func(a *domain.Account) bool { return a.IdentityKey == key })
}

func (r *stubAccountRepo) FindByKeyOrEmail(_ context.Context, v domain.Variant, key, email string) (*domain.Account, error) {
	return r.find(v, func(a *domain.Account) bool {
		return (key != "" && a.IdentityKey == key) || (email != "" && a.Email == email)
	})
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) error {
	if r.createFn != nil {
		if err := r.createFn(a); err != nil {
			return err
		}
	}
	if _, taken := r.owners[a.IdentityKey]; taken {
		return domain.ErrIdentityTaken
	}
	for _, existing := range r.rows[a.Variant] {
		if existing.Email == a.Email {
			return domain.ErrEmailTaken
		}
	}
	r.creates++
	r.seed(a)
	return nil
}

func (r *stubAccountRepo) SetVerification(_ context.Context, v domain.Variant, key string, ver domain.Verification) error {
	r.verified = append(r.verified, v)
	a, ok := r.rows[v][key]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Verification = ver
	return nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.UserSummary, error) {
	var out []domain.UserSummary
	for _, v := range domain.ResolutionOrder {
		for _, a := range r.rows[v] {
			out = append(out, domain.UserSummary{ID: a.IdentityKey, Email: a.Email, UserType: v.ListingType()})
		}
	}
	return out, nil
}

func (r *stubAccountRepo) count() int {
	n := 0
	for _, rows := range r.rows {
		n += len(rows)
	}
	return n
}

// ---------------------------------------------------------------------------
// Role directory
// ---------------------------------------------------------------------------

type stubRoleRepo struct {
	ids   map[string]string
	calls int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{ids: map[string]string{
		"customer":    "1",
		"vendor":      "2",
		"organizer":   "3",
		"super_admin": "4",
	}}
}

func (r *stubRoleRepo) FindIDByName(_ context.Context, name string) (string, error) {
	r.calls++
	id, ok := r.ids[name]
	if !ok {
		return "", domain.ErrRoleNotFound
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Sessions and audit
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	sessions map[string]domain.Session
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type stubSink struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *stubSink) Record(e domain.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *stubSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}

type stubAuditLog struct {
	events    []domain.AuthEvent
	lastLimit int
}

func (l *stubAuditLog) Log(_ context.Context, e domain.AuthEvent) error {
	l.events = append(l.events, e)
	return nil
}

func (l *stubAuditLog) Recent(_ context.Context, limit int) ([]domain.AuthEvent, error) {
	l.lastLimit = limit
	if len(l.events) < limit {
		return l.events, nil
	}
	return l.events[:limit], nil
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

type stubAdminRepo struct {
	admins   map[string]*domain.SuperAdmin
	touchErr error
	touched  []string
}

func (r *stubAdminRepo) FindActiveByEmail(_ context.Context, email string) (*domain.SuperAdmin, error) {
	for _, a := range r.admins {
		if a.Email == email && a.IsActive {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.SuperAdmin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) TouchLastLogin(_ context.Context, id string, _ time.Time) error {
	if r.touchErr != nil {
		return r.touchErr
	}
	r.touched = append(r.touched, id)
	return nil
}

type stubActionRepo struct {
	err     error
	actions []domain.AdminAction
}

func (r *stubActionRepo) Record(_ context.Context, a domain.AdminAction) error {
	if r.err != nil {
		return r.err
	}
	r.actions = append(r.actions, a)
	return nil
}

// ---------------------------------------------------------------------------
// Moderation queues and venues
// ---------------------------------------------------------------------------

type stubModerationRepo struct {
	verifications map[string]*domain.VerificationRequest
	cancellations map[string]*domain.CancellationRequest
	cancelledBy   []domain.CancellationDecision
}

func (r *stubModerationRepo) ListVerificationRequests(_ context.Context) ([]domain.VerificationRequest, error) {
	var out []domain.VerificationRequest
	for _, v := range r.verifications {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubModerationRepo) ResolveVerificationRequest(_ context.Context, id string, d domain.Decision, notes, adminID string) error {
	v, ok := r.verifications[id]
	if !ok {
		return domain.ErrVerificationRequestNotFound
	}
	v.Status = d.Status()
	v.AdminNotes = notes
	v.ReviewedBy = adminID
	return nil
}

func (r *stubModerationRepo) ListPendingCancellations(_ context.Context) ([]domain.CancellationRequest, error) {
	var out []domain.CancellationRequest
	for _, c := range r.cancellations {
		if c.Status == domain.VerificationPending {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubModerationRepo) ResolveCancellation(_ context.Context, in domain.CancellationDecision) error {
	c, ok := r.cancellations[in.CancellationID]
	if !ok {
		return domain.ErrCancellationRequestNotFound
	}
	c.Status = in.Decision.Status()
	r.cancelledBy = append(r.cancelledBy, in)
	return nil
}

type stubVenueRepo struct {
	inserted []domain.VenueComponents
	err      error
}

func (r *stubVenueRepo) InsertComponents(_ context.Context, v domain.VenueComponents) (domain.VenueRef, error) {
	if r.err != nil {
		return domain.VenueRef{}, r.err
	}
	r.inserted = append(r.inserted, v)
	return domain.VenueRef{AddressID: int64(len(r.inserted)), BuildingID: int64(len(r.inserted))}, nil
}

var (
	_ ports.AccountRepository     = (*stubAccountRepo)(nil)
	_ ports.RoleRepository        = (*stubRoleRepo)(nil)
	_ ports.SessionStore          = (*stubSessionStore)(nil)
	_ ports.AuthEventSink         = (*stubSink)(nil)
	_ ports.AuditLog              = (*stubAuditLog)(nil)
	_ ports.AdminRepository       = (*stubAdminRepo)(nil)
	_ ports.AdminActionRepository = (*stubActionRepo)(nil)
	_ ports.ModerationRepository  = (*stubModerationRepo)(nil)
	_ ports.VenueRepository       = (*stubVenueRepo)(nil)
)

// testHasher keeps bcrypt cheap in tests.
func testHasher() *BcryptHasher { return NewBcryptHasher(4) }
