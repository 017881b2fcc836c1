// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/config"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/event"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/eventsponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/health"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/identity"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/metrics"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/middleware"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/pages"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/profile"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/server"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/sponsor"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/storage"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/tier"
	"github.com/carterperez-dev/templates/sponsor-backend/internal/views"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	verifier, err := identity.NewVerifier(cfg.Identity)
	if err != nil {
		return err
	}
	logger.Info("session verifier initialized",
		"jwks_url", cfg.Identity.JWKSURL,
		"issuer", cfg.Identity.Issuer,
	)

	m := metrics.New(cfg.Metrics.Namespace)
	m.RegisterPools(cfg.Metrics.Namespace, metrics.PoolSources{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
	})

	cache := views.NewCache(redis.Client, cfg.Views.CacheTTL, m)

	deps := []health.Dependency{
		{Name: "database", Checker: db},
		{Name: "redis", Checker: redis},
	}

	var sponsorOpts []sponsor.ServiceOption
	if cfg.Storage.Enabled {
		store, storeErr := storage.NewS3Store(ctx, cfg.Storage)
		if storeErr != nil {
			return storeErr
		}
		sponsorOpts = append(sponsorOpts, sponsor.WithDocumentStore(store, m))
		deps = append(deps, health.Dependency{Name: "storage", Checker: store})
		logger.Info("document storage enabled", "bucket", cfg.Storage.Bucket)
	}

	var identityAdmin profile.IdentityAdmin
	if adminClient := identity.NewAdminClient(cfg.Identity); adminClient.Configured() {
		identityAdmin = adminClient
	} else {
		logger.Warn("identity admin not configured, rejected sign-ups keep their identity")
	}

	profileSvc := profile.NewService(profile.NewRepository(db.DB), identityAdmin, cache)

	tierHandler := tier.NewHandler(
		tier.NewService(tier.NewRepository(db.DB), cache), m)
	sponsorHandler := sponsor.NewHandler(
		sponsor.NewService(sponsor.NewRepository(db.DB), cache, sponsorOpts...),
		m,
		cfg.Storage.MaxUploadBytes,
	)
	eventHandler := event.NewHandler(
		event.NewService(event.NewRepository(db.DB), cache), m)
	linkHandler := eventsponsor.NewHandler(
		eventsponsor.NewService(eventsponsor.NewRepository(db.DB), cache), m)
	profileHandler := profile.NewHandler(profileSvc, m)
	viewHandler := views.NewHandler(
		views.NewService(views.NewRepository(db.DB), cache))
	pageHandler := pages.NewHandler(cfg.Identity.CookieName, cfg.IsProduction())

	healthHandler := health.NewHandler(deps...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	healthHandler.RegisterRoutes(router)
	pageHandler.RegisterRoutes(router)

	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, m.Handler())
	}

	limiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Views: middleware.PerWindow(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
			cfg.RateLimit.Window,
		),
		Actions: middleware.PerWindow(
			cfg.RateLimit.ActionRequests,
			cfg.RateLimit.ActionBurst,
			cfg.RateLimit.Window,
		),
		KeyFunc:   middleware.KeyByUser,
		FailOpen:  true,
		OnLimited: m.RecordRateLimited,
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(verifier, cfg.Identity.CookieName))
		r.Use(middleware.LoadCaller(profileSvc))
		r.Use(limiter.Handler)
		r.Use(middleware.Require(authz.ActionViewProfile))
		r.Use(middleware.NoStore)

		viewHandler.RegisterRoutes(r)
		profileHandler.RegisterRoutes(r)
		tierHandler.RegisterRoutes(r)
		sponsorHandler.RegisterRoutes(r)
		eventHandler.RegisterRoutes(r)
		linkHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
