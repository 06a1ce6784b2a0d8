package configstore

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Driver names the storage backend for the config blobs.
type Driver string

// Supported drivers.
const (
	DriverMemory   Driver = "memory"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
)

// Option configures a store created by New.
type Option func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	pool        *pgxpool.Pool
}

// WithRedisClient sets the Redis client for the redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithPool sets the PostgreSQL pool for the postgres driver.
func WithPool(pool *pgxpool.Pool) Option {
	return func(c *storeConfig) {
		c.pool = pool
	}
}

// New creates a Store for the given driver.
// The redis driver requires WithRedisClient; the postgres driver requires
// WithPool.
func New(driver Driver, opts ...Option) (Store, error) {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch driver {
	case DriverMemory:
		return NewMemory(), nil

	case DriverRedis:
		if cfg.redisClient == nil {
			return nil, fmt.Errorf("%w: redis driver requires a client", ErrInvalidConfig)
		}
		return NewRedis(cfg.redisClient), nil

	case DriverPostgres:
		if cfg.pool == nil {
			return nil, fmt.Errorf("%w: postgres driver requires a pool", ErrInvalidConfig)
		}
		return NewPostgres(cfg.pool), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDriver, driver)
	}
}
