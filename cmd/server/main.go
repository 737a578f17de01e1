// @title           Account Service API
// @version         1.0
// @description     Registration, identity resolution, sessions and moderation for the event platform.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/eventhub/account-service/internal/api"
	"github.com/eventhub/account-service/internal/core/service"
	"github.com/eventhub/account-service/internal/infrastructure/config"
	mongorepo "github.com/eventhub/account-service/internal/infrastructure/db/mongo"
	"github.com/eventhub/account-service/internal/infrastructure/db/postgres"
	redisstore "github.com/eventhub/account-service/internal/infrastructure/db/redis"
	"github.com/eventhub/account-service/internal/infrastructure/http/handlers"
	"github.com/eventhub/account-service/internal/infrastructure/queue"
	"github.com/eventhub/account-service/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Pretty: true})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "account-service",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Backing stores ---
	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.URL, MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Postgres.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("postgres schema ensured")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	mongoClient, mongoDB, err := mongorepo.Connect(ctx, mongorepo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	authEvents := mongorepo.NewAuthEventRepository(mongoDB)
	if err := authEvents.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure audit indexes")
	}

	// --- Audit pipeline ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, authEvents, logger.For("audit"))
	dispatcher.Start(workerCtx)
	defer func() {
		cancelWorkers()
		dispatcher.Wait()
	}()

	// --- Repositories and services ---
	accounts := postgres.NewAccountRepository(db)
	admins := postgres.NewAdminRepository(db)
	roles := service.NewRoleDirectory(postgres.NewRoleRepository(db))
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL, redisstore.NewSessionStore(rdb))
	resolver := service.NewIdentityResolver(accounts)

	router := api.NewRouter(api.Deps{
		Log:          logger.For("http"),
		CORSOrigins:  cfg.CORSAllowedOrigins,
		Tokens:       tokens,
		Registration: service.NewRegistrationService(roles, accounts, hasher, logger.For("registration")),
		Auth:         service.NewAuthService(accounts, hasher, tokens, dispatcher, logger.For("auth")),
		Resolver:     resolver,
		Sync:         service.NewSyncService(resolver, roles, accounts, logger.For("sync")),
		Admin: service.NewAdminAuthService(admins, admins, hasher, tokens, dispatcher, service.AdminAuthConfig{
			QuickLoginEnabled: cfg.Admin.QuickLogin,
			QuickLoginID:      cfg.Admin.QuickLoginID,
		}, logger.For("admin")),
		Moderation: service.NewModerationService(accounts, resolver, postgres.NewModerationRepository(db), admins, authEvents, logger.For("moderation")),
		Venues:     service.NewVenueService(postgres.NewVenueRepository(db)),
		Bookings:   service.NewBookingService(postgres.NewBookingRepository(db), accounts, logger.For("bookings")),
		HealthChecks: []handlers.DependencyCheck{
			handlers.PostgresCheck(db),
			handlers.RedisCheck(rdb),
			handlers.MongoCheck(mongoDB),
		},
	})

	if cfg.Admin.QuickLogin {
		log.Warn().Str("admin_id", cfg.Admin.QuickLoginID).Msg("super admin quick login is enabled")
	}

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("account service listening")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
