package config

import (
	"fmt"
	"os"
	"slices"
)

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.ModelName == "" {
		return fmt.Errorf("%w: model_name cannot be empty", ErrInvalidModelName)
	}

	if c.MaxKnowledgeBytes < 0 {
		return fmt.Errorf("%w: must be >= 0 (0 disables the cap), got %d",
			ErrInvalidMaxKnowledgeBytes, c.MaxKnowledgeBytes)
	}

	validDrivers := []string{StoreDriverMemory, StoreDriverRedis, StoreDriverPostgres}
	if !slices.Contains(validDrivers, c.StoreDriver) {
		return fmt.Errorf("%w: %q is not valid, must be one of: %v",
			ErrInvalidStoreDriver, c.StoreDriver, validDrivers)
	}

	switch c.StoreDriver {
	case StoreDriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: redis_addr cannot be empty", ErrInvalidRedisAddr)
		}
	case StoreDriverPostgres:
		if c.PostgresHost == "" {
			return fmt.Errorf("%w: host cannot be empty", ErrInvalidPostgresHost)
		}
		if c.PostgresPort < 1 || c.PostgresPort > 65535 {
			return fmt.Errorf("%w: must be between 1 and 65535, got %d",
				ErrInvalidPostgresPort, c.PostgresPort)
		}
		if c.PostgresDBName == "" {
			return fmt.Errorf("%w: database name cannot be empty", ErrInvalidPostgresDBName)
		}
	}

	return nil
}

// ValidateServe validates the additional requirements of serve mode.
// The provider credential is required at startup. The admin password is
// not: the server runs without it, and the admin endpoints report the
// misconfiguration per request instead.
func (c *Config) ValidateServe() error {
	if c == nil {
		return ErrConfigNil
	}

	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY environment variable is required\n"+
			"Get your API key at: https://ai.google.dev/gemini-api/docs/api-key",
			ErrMissingAPIKey)
	}

	return nil
}
