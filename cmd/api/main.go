package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "github.com/pushpakrawat/veekend/internal/http"
	"github.com/pushpakrawat/veekend/internal/http/router"
	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/internal/places/google"
	"github.com/pushpakrawat/veekend/internal/search"
	"github.com/pushpakrawat/veekend/internal/wishlist"
	"github.com/pushpakrawat/veekend/platform/cache"
	"github.com/pushpakrawat/veekend/platform/config"
	"github.com/pushpakrawat/veekend/platform/db"
	"github.com/pushpakrawat/veekend/platform/logger"
	"github.com/pushpakrawat/veekend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Redis-backed place details cache; nil when REDIS_URL is not set.
	placeCache, err := cache.New(cfg)
	if err != nil {
		log.Warn("cache unavailable, place details will not be cached", "error", err)
		placeCache = nil
	}
	if placeCache != nil {
		defer placeCache.Close()
		log.Info("place details cache initialized")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	var gateway places.Gateway = google.New(cfg, placeCache, log)

	sessionManager := search.NewManager(cfg, gateway, log)
	go sessionManager.Run(ctx)

	placesModule := places.NewModule(gateway, val)
	searchModule := search.NewModule(sessionManager, gateway, val)
	wishlistModule := wishlist.NewModule(pool, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Health:    db.NewPoolAdapter(pool),
		RateLimit: cfg.RateLimitPerSecond,
		RateBurst: cfg.RateLimitBurst,
		Modules: []apphttp.Module{
			placesModule,
			searchModule,
			wishlistModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
