package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/account-service/internal/api/middleware"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

// newJSONContext builds an echo context for a JSON request with the
// production validator registered.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context, s *domain.Session) {
	c.Set(middleware.ContextKeySession, s)
	c.Set(middleware.ContextKeyRole, s.Role)
}

type stubRegistration struct {
	got ports.RegisterInput
	err error
}

func (s *stubRegistration) Register(_ context.Context, in ports.RegisterInput) (*domain.Account, error) {
	s.got = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Account{IdentityKey: in.IdentityKey, Variant: in.Variant, Email: in.Email}, nil
}

type stubAuth struct {
	loginFn   func(in ports.LoginInput) (*ports.LoginResult, error)
	loggedOut *domain.Session
	current   *domain.Session
	err       error
}

func (s *stubAuth) Login(_ context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(in)
}

func (s *stubAuth) Logout(_ context.Context, session *domain.Session, _ ports.RequestMeta) error {
	s.loggedOut = session
	return s.err
}

func (s *stubAuth) CurrentSession(_ context.Context, session *domain.Session) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.current != nil {
		return s.current, nil
	}
	return session, nil
}

type stubResolver struct {
	accounts map[string]*domain.Account
	roles    map[string]string
	queries  []ports.IdentityQuery
}

func (r *stubResolver) Resolve(_ context.Context, q ports.IdentityQuery) (*domain.Account, error) {
	r.queries = append(r.queries, q)
	if q.IdentityKey == "" && q.Email == "" {
		return nil, domain.MissingFields("firebaseUid", "email")
	}
	if a, ok := r.accounts[q.IdentityKey]; ok {
		return a, nil
	}
	for _, a := range r.accounts {
		if a.Email == q.Email {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubResolver) ResolveRoleID(_ context.Context, key string) (string, error) {
	id, ok := r.roles[key]
	if !ok {
		return "", domain.ErrAccountNotFound
	}
	return id, nil
}

type stubSync struct {
	got ports.SyncInput
	res *ports.SyncResult
	err error
}

func (s *stubSync) Sync(_ context.Context, in ports.SyncInput) (*ports.SyncResult, error) {
	s.got = in
	return s.res, s.err
}

type stubAdminAuth struct {
	res *ports.AdminLoginResult
	err error
}

func (s *stubAdminAuth) Login(context.Context, string, string, ports.RequestMeta) (*ports.AdminLoginResult, error) {
	return s.res, s.err
}

func (s *stubAdminAuth) QuickLogin(context.Context, ports.RequestMeta) (*ports.AdminLoginResult, error) {
	return s.res, s.err
}

type stubModeration struct {
	verification ports.HandleVerificationInput
	cancellation ports.HandleCancellationInput
	verify       ports.VerifyUserInput
	limit        int
	err          error
}

func (s *stubModeration) ListVerificationRequests(context.Context) ([]domain.VerificationRequest, error) {
	return nil, s.err
}

func (s *stubModeration) HandleVerification(_ context.Context, in ports.HandleVerificationInput) error {
	s.verification = in
	return s.err
}

func (s *stubModeration) ListCancellationRequests(context.Context) ([]domain.CancellationRequest, error) {
	return []domain.CancellationRequest{{ID: "7", EventID: "3", Status: domain.VerificationPending}}, s.err
}

func (s *stubModeration) HandleCancellation(_ context.Context, in ports.HandleCancellationInput) error {
	s.cancellation = in
	return s.err
}

func (s *stubModeration) ListUsers(context.Context) ([]domain.UserSummary, error) {
	return []domain.UserSummary{{ID: "uid-1", UserType: "individual"}}, s.err
}

func (s *stubModeration) VerifyUser(_ context.Context, in ports.VerifyUserInput) (domain.Variant, error) {
	s.verify = in
	if s.err != nil {
		return "", s.err
	}
	return domain.VariantCustomer, nil
}

func (s *stubModeration) RecentAuthEvents(_ context.Context, limit int) ([]domain.AuthEvent, error) {
	s.limit = limit
	return nil, s.err
}

type stubVenues struct {
	got domain.VenueComponents
	err error
}

func (s *stubVenues) InsertComponents(_ context.Context, v domain.VenueComponents) (domain.VenueRef, error) {
	s.got = v
	if s.err != nil {
		return domain.VenueRef{}, s.err
	}
	return domain.VenueRef{AddressID: 11, BuildingID: 12}, nil
}


type stubBookings struct {
	created    ports.CreateEventInput
	customerID string
	err        error
}

func (s *stubBookings) EventTypes(context.Context) ([]domain.EventType, error) {
	return []domain.EventType{{ID: 1, Name: "Wedding"}}, s.err
}

func (s *stubBookings) CustomerEvents(_ context.Context, customerID string) ([]domain.Event, error) {
	s.customerID = customerID
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Event{{ID: 5, Name: "Birthday", CustomerID: customerID, Status: "pending"}}, nil
}

func (s *stubBookings) CreateEvent(_ context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Event{ID: 9, Name: in.Name, CustomerID: in.CustomerID, Status: domain.EventStatusPending}, nil
}

func (s *stubBookings) Bookings(context.Context) (domain.BookingBoard, error) {
	if s.err != nil {
		return nil, s.err
	}
	board := domain.NewBookingBoard()
	board.Add(domain.Event{ID: 5, Status: "upcoming", CustomerID: "cust-1"})
	return board, nil
}
