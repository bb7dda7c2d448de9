// Package config resolves all process configuration from the environment,
// once, at startup.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings shared by the SDK and the stub server binary.
type Config struct {
	// APIBaseURL is the root of the remote storefront API, including the
	// /api prefix. Resolved once per process.
	APIBaseURL  string        `env:"API_BASE_URL, default=http://localhost:8000/api"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=15s"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,   default=false"`

	Credentials CredentialsConfig
	Stub        StubConfig
}

// CredentialsConfig selects where the session token is persisted.
type CredentialsConfig struct {
	// Backend is one of: memory, file, redis.
	Backend string `env:"CREDENTIALS_BACKEND, default=file"`
	// File is the path of the JSON credential file for the file backend.
	File string `env:"CREDENTIALS_FILE, default=.storefront-credentials.json"`

	RedisAddr string `env:"CREDENTIALS_REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"CREDENTIALS_REDIS_DB,   default=0"`
	// RedisKeyPrefix namespaces credential keys when several kiosks share
	// one Redis instance.
	RedisKeyPrefix string `env:"CREDENTIALS_REDIS_PREFIX, default=storefront:session:"`
}

// StubConfig configures the development stub backend.
type StubConfig struct {
	Port      string        `env:"STUB_PORT,       default=8000"`
	JWTSecret string        `env:"STUB_JWT_SECRET, default=dev-only-secret"`
	TokenTTL  time.Duration `env:"STUB_TOKEN_TTL,  default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
