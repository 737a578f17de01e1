package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/eventhub/account-service/docs"
	"github.com/eventhub/account-service/internal/api/handler"
	"github.com/eventhub/account-service/internal/api/middleware"
	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
	"github.com/eventhub/account-service/internal/infrastructure/http/handlers"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Log          zerolog.Logger
	CORSOrigins  []string
	Tokens       ports.TokenVerifier
	Registration ports.RegistrationService
	Auth         ports.AuthService
	Resolver     ports.IdentityResolver
	Sync         ports.SyncService
	Admin        ports.AdminAuthService
	Moderation   ports.ModerationService
	Venues       ports.VenueService
	Bookings     ports.BookingService
	HealthChecks []handlers.DependencyCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.CORSOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(requestLogger(d.Log))

	// --- Handlers ---
	accounts := handler.NewAccountHandler(d.Registration)
	auth := handler.NewAuthHandler(d.Auth)
	identity := handler.NewIdentityHandler(d.Resolver, d.Sync)
	admin := handler.NewAdminHandler(d.Admin)
	moderation := handler.NewModerationHandler(d.Moderation)
	venues := handler.NewVenueHandler(d.Venues)
	bookings := handler.NewBookingHandler(d.Bookings)
	requireAuth := middleware.Auth(d.Tokens)

	api := e.Group("/api")

	// --- Registration and identity (public) ---
	api.POST("/registerCustomer", accounts.RegisterCustomer)
	api.POST("/registerVendor", accounts.RegisterVendor)
	api.POST("/registerOrganizer", accounts.RegisterOrganizer)
	api.POST("/getUserType", identity.GetUserType)
	api.POST("/getRole", identity.GetRole)
	api.POST("/syncUser", identity.SyncUser)

	// --- Sessions ---
	api.POST("/login", auth.Login)
	api.POST("/loginCustomer", auth.Login)
	api.POST("/logout", auth.Logout, requireAuth)
	api.GET("/session", auth.Session, requireAuth)

	// --- Super admin ---
	api.POST("/superAdminLogin", admin.Login)
	api.POST("/superAdminQuickLogin", admin.QuickLogin)

	console := api.Group("/admin", requireAuth, middleware.RBAC(domain.RoleSuperAdmin))
	console.GET("/verification-requests", moderation.ListVerificationRequests)
	console.POST("/handle-verification", moderation.HandleVerification)
	console.GET("/cancellation-requests", moderation.ListCancellationRequests)
	console.POST("/handle-cancellation", moderation.HandleCancellation)
	console.GET("/users", moderation.ListUsers)
	console.POST("/verify-user", moderation.VerifyUser)
	console.GET("/audit-events", moderation.AuditEvents)

	// --- Venues ---
	api.POST("/insert-venue-components", venues.InsertComponents, requireAuth)

	// --- Events and bookings ---
	api.GET("/event-types", bookings.EventTypes)
	api.GET("/events/user/:userId", bookings.CustomerEvents, requireAuth)
	api.POST("/events", bookings.CreateEvent, requireAuth)
	api.GET("/bookings", bookings.Bookings, requireAuth)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewHealthDependenciesHandler(d.HealthChecks...).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one access log line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
