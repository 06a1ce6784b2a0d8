package config

import (
	"errors"
	"testing"
)

// validConfig returns a minimal configuration that passes Validate().
func validConfig() *Config {
	return &Config{
		ModelName:   DefaultModelName,
		StoreDriver: StoreDriverMemory,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "valid memory config",
			modify: func(*Config) {},
		},
		{
			name:    "empty model name",
			modify:  func(c *Config) { c.ModelName = "" },
			wantErr: ErrInvalidModelName,
		},
		{
			name:    "negative knowledge cap",
			modify:  func(c *Config) { c.MaxKnowledgeBytes = -1 },
			wantErr: ErrInvalidMaxKnowledgeBytes,
		},
		{
			name:    "unknown store driver",
			modify:  func(c *Config) { c.StoreDriver = "etcd" },
			wantErr: ErrInvalidStoreDriver,
		},
		{
			name:    "redis driver without address",
			modify:  func(c *Config) { c.StoreDriver = StoreDriverRedis },
			wantErr: ErrInvalidRedisAddr,
		},
		{
			name: "postgres driver without host",
			modify: func(c *Config) {
				c.StoreDriver = StoreDriverPostgres
				c.PostgresPort = 5432
				c.PostgresDBName = "gids"
			},
			wantErr: ErrInvalidPostgresHost,
		},
		{
			name: "postgres driver with bad port",
			modify: func(c *Config) {
				c.StoreDriver = StoreDriverPostgres
				c.PostgresHost = "localhost"
				c.PostgresPort = 70000
				c.PostgresDBName = "gids"
			},
			wantErr: ErrInvalidPostgresPort,
		},
		{
			name: "postgres driver without db name",
			modify: func(c *Config) {
				c.StoreDriver = StoreDriverPostgres
				c.PostgresHost = "localhost"
				c.PostgresPort = 5432
			},
			wantErr: ErrInvalidPostgresDBName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	var cfg *Config
	if !errors.Is(cfg.Validate(), ErrConfigNil) {
		t.Fatal("Validate() on nil config should return ErrConfigNil")
	}
}

func TestValidateServe_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg := validConfig()
	cfg.AdminPassword = "geheim-wachtwoord"

	if !errors.Is(cfg.ValidateServe(), ErrMissingAPIKey) {
		t.Fatal("ValidateServe() without GEMINI_API_KEY should return ErrMissingAPIKey")
	}
}

func TestValidateServe_NoAdminPasswordStillOK(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := validConfig()

	// Serving without an admin password is allowed; the admin endpoints
	// report the misconfiguration per request.
	if err := cfg.ValidateServe(); err != nil {
		t.Fatalf("ValidateServe() error: %v", err)
	}
}

func TestValidateServe_OK(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := validConfig()
	cfg.AdminPassword = "geheim-wachtwoord"

	if err := cfg.ValidateServe(); err != nil {
		t.Fatalf("ValidateServe() error: %v", err)
	}
}
