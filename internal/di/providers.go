package di

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/CodeWithNeha/Data-Pusher/internal/app"
	"github.com/CodeWithNeha/Data-Pusher/internal/config"
	"github.com/CodeWithNeha/Data-Pusher/internal/database"
	"github.com/CodeWithNeha/Data-Pusher/internal/http/handler"
	"github.com/CodeWithNeha/Data-Pusher/internal/http/router"
	"github.com/CodeWithNeha/Data-Pusher/internal/observability"
	"github.com/CodeWithNeha/Data-Pusher/internal/relay"
	"github.com/CodeWithNeha/Data-Pusher/internal/repository"
	"github.com/CodeWithNeha/Data-Pusher/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(provideLogger)

var DatabaseSet = wire.NewSet(provideDB)

var RepositorySet = wire.NewSet(
	repository.NewAccountRepository,
	repository.NewDestinationRepository,
)

var ServiceSet = wire.NewSet(
	provideTokenCache,
	provideAuthService,
	provideRelayClient,
	provideDispatchService,
)

var HTTPSet = wire.NewSet(
	handler.NewAccountHandler,
	handler.NewDestinationHandler,
	handler.NewIngestHandler,
	provideRouterDependencies,
	provideRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideLogger(cfg *config.Config) *slog.Logger {
	return observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
}

// provideDB opens the database and applies migrations, mirroring the
// create-tables-on-boot behavior of the service.
func provideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func provideTokenCache(cfg *config.Config) (service.TokenCache, error) {
	if cfg.RedisURL == "" {
		return service.NewNoopTokenCache(), nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return service.NewRedisTokenCache(redis.NewClient(opts), ""), nil
}

func provideAuthService(accounts repository.AccountRepository, cache service.TokenCache, cfg *config.Config, logger *slog.Logger) *service.AuthService {
	return service.NewAuthService(accounts, cache, cfg.TokenCacheTTL, logger)
}

func provideRelayClient(cfg *config.Config, logger *slog.Logger) relay.Client {
	return relay.NewHTTPClient(cfg.RelayTimeout, logger)
}

func provideDispatchService(destinations repository.DestinationRepository, relayClient relay.Client, logger *slog.Logger) *service.DispatchService {
	return service.NewDispatchService(destinations, relayClient, logger)
}

func provideRouterDependencies(
	accounts *handler.AccountHandler,
	destinations *handler.DestinationHandler,
	ingest *handler.IngestHandler,
	db *gorm.DB,
	logger *slog.Logger,
) router.Dependencies {
	return router.Dependencies{
		Accounts:     accounts,
		Destinations: destinations,
		Ingest:       ingest,
		DB:           db,
		Logger:       logger,
	}
}

func provideRouter(deps router.Dependencies) http.Handler {
	return router.New(deps)
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// provideOpenDB opens the database without migrating, for the migration
// runner which applies migrations itself.
func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

// MigrationRunner applies schema migrations and nothing else, for the
// `migrate` subcommand.
type MigrationRunner struct {
	db *gorm.DB
}

func NewMigrationRunner(db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{db: db}
}

func (m *MigrationRunner) Run() error {
	return database.Migrate(m.db)
}
