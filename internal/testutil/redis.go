package testutil

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// TestRedisContainer wraps a Redis test container with a connected client.
type TestRedisContainer struct {
	Container *tcredis.RedisContainer
	Client    *goredis.Client
}

// SetupTestRedis starts an isolated Redis container and returns a ready
// client. The cleanup function terminates the container and must be called
// by the test.
func SetupTestRedis(t *testing.T) (*TestRedisContainer, func()) {
	t.Helper()

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		_ = redisContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	opts, err := goredis.ParseURL(connStr)
	if err != nil {
		_ = redisContainer.Terminate(ctx)
		t.Fatalf("Failed to parse connection string: %v", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = redisContainer.Terminate(ctx)
		t.Fatalf("Failed to ping Redis: %v", err)
	}

	container := &TestRedisContainer{
		Container: redisContainer,
		Client:    client,
	}

	cleanup := func() {
		_ = client.Close()
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return container, cleanup
}
