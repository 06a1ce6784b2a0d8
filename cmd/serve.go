package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/orbinite/gids/db"
	"github.com/orbinite/gids/internal/api"
	"github.com/orbinite/gids/internal/chat"
	"github.com/orbinite/gids/internal/config"
	"github.com/orbinite/gids/internal/configstore"
	"github.com/orbinite/gids/internal/log"
	"github.com/orbinite/gids/internal/observability"
)

// runServe initializes and starts the HTTP API server.
func runServe(logger log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err = cfg.ValidateServe(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if cfg.AdminPassword == "" {
		logger.Warn("no admin password configured, admin endpoints will refuse access")
	}

	addr, err := parseServeAddr()
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting HTTP API server",
		"version", Version,
		"addr", addr,
		"model", cfg.ModelName,
		"store_driver", cfg.StoreDriver)

	shutdownTracing, err := observability.Setup(ctx, observability.Config{
		Enabled:     cfg.Tracing,
		Endpoint:    cfg.OTLPEndpoint,
		Environment: cfg.Environment,
		ServiceName: "gids",
	}, logger)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flushing traces failed", "error", err)
		}
	}()

	store, cleanup, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("creating config store: %w", err)
	}
	defer cleanup()

	generator, err := chat.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), cfg.ModelName, logger)
	if err != nil {
		return fmt.Errorf("creating model client: %w", err)
	}

	server, err := api.NewServer(store, generator, api.ServerConfig{
		AdminPassword:     cfg.AdminPassword,
		MaxKnowledgeBytes: cfg.MaxKnowledgeBytes,
		RequestTimeout:    time.Duration(cfg.RequestTimeout) * time.Second,
		CORSOrigins:       cfg.CORSOrigins,
		TrustProxy:        cfg.TrustProxy,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	return server.Run(ctx, addr)
}

// buildStore constructs the config store for the configured driver.
// The returned cleanup releases the store and its underlying connections.
func buildStore(ctx context.Context, cfg *config.Config, logger log.Logger) (configstore.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store, err := configstore.New(configstore.DriverMemory)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using in-memory config store, writes do not survive restarts")
		return store, closeStore(store, logger), nil

	case config.StoreDriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("pinging redis at %s: %w", cfg.RedisAddr, err)
		}

		store, err := configstore.New(configstore.DriverRedis, configstore.WithRedisClient(client))
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		logger.Info("using redis config store", "addr", cfg.RedisAddr)
		return store, closeStore(store, logger), nil

	case config.StoreDriverPostgres:
		if err := db.Migrate(cfg.PostgresURL()); err != nil {
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}

		pool, err := pgxpool.New(ctx, cfg.PostgresConnectionString())
		if err != nil {
			return nil, nil, fmt.Errorf("creating postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pinging postgres: %w", err)
		}

		store, err := configstore.New(configstore.DriverPostgres, configstore.WithPool(pool))
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("using postgres config store",
			"host", cfg.PostgresHost, "database", cfg.PostgresDBName)

		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing config store failed", "error", err)
			}
			pool.Close()
		}
		return store, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver: %q", cfg.StoreDriver)
	}
}

func closeStore(store configstore.Store, logger log.Logger) func() {
	return func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing config store failed", "error", err)
		}
	}
}
