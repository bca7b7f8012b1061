package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/wildcat/spartan/common/cache"
	"github.com/wildcat/spartan/common/config"
	"github.com/wildcat/spartan/common/db"
	"github.com/wildcat/spartan/common/logger"
	"github.com/wildcat/spartan/common/notify"
	"github.com/wildcat/spartan/common/storage"
)

// Setup initializes all service components.
// This is the main entry point for both binaries. Database and notifier are
// always wired; object storage and the dedup cache are optional.
func Setup(ctx context.Context, serviceName string, opts ...Option) (*Components, error) {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	components := &Components{
		cleanupFuncs: make([]func() error, 0),
	}

	// 1. Load configuration
	var err error
	if options.customConfig != nil {
		components.Config = options.customConfig
	} else {
		components.Config, err = config.Load(serviceName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 2. Initialize logger
	if options.customLogger != nil {
		components.Logger = options.customLogger
	} else {
		components.Logger = logger.New(
			components.Config.Service.LogLevel,
			components.Config.Service.LogFormat,
		)
	}

	components.Logger.Info("initializing service",
		"service", serviceName,
		"environment", components.Config.Service.Environment,
	)

	// 3. Initialize database and record-store schema
	components.Logger.Info("connecting to database")
	components.DB, err = db.New(ctx, components.Config, components.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	components.addCleanup(func() error {
		components.DB.Close()
		return nil
	})

	if err := components.DB.InitSchema(ctx); err != nil {
		components.Shutdown(ctx)
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	// 4. Initialize object storage (if not skipped)
	if !options.skipStorage {
		components.Logger.Info("connecting to object storage")
		components.Storage, err = storage.New(ctx, components.Config, components.Logger)
		if err != nil {
			components.Shutdown(ctx)
			return nil, fmt.Errorf("failed to connect to object storage: %w", err)
		}
	}

	// 5. Initialize dedup cache (optional: requires REDIS_ADDR)
	if !options.skipCache && components.Config.Cache.Addr != "" {
		components.Logger.Info("connecting to dedup cache", "addr", components.Config.Cache.Addr)

		redisClient := redis.NewClient(&redis.Options{
			Addr:     components.Config.Cache.Addr,
			Password: components.Config.Cache.Password,
			DB:       components.Config.Cache.DB,
		})

		// A dead cache is not fatal: dedup falls back to the record store.
		if err := redisClient.Ping(ctx).Err(); err != nil {
			components.Logger.Warn("dedup cache unreachable, continuing without it", "error", err)
		} else {
			components.Dedup = cache.NewDedup(redisClient, components.Config.Cache.TTL, components.Logger)
			components.addCleanup(redisClient.Close)
		}
	}

	// 6. Initialize notifier (no-op when webhook URL unset)
	components.Notifier = notify.New(components.Config.Notify.WebhookURL, components.Logger)

	components.Logger.Info("service initialization complete",
		"service", serviceName,
		"storage", components.Storage != nil,
		"dedup_cache", components.Dedup != nil,
		"notifier", components.Config.Notify.WebhookURL != "",
	)

	return components, nil
}
