package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogPretty {
		t.Errorf("log defaults = %q pretty=%v", cfg.LogLevel, cfg.LogPretty)
	}
	if cfg.Credentials.Backend != "file" {
		t.Errorf("Credentials.Backend = %q", cfg.Credentials.Backend)
	}
	if cfg.Credentials.File != ".storefront-credentials.json" {
		t.Errorf("Credentials.File = %q", cfg.Credentials.File)
	}
	if cfg.Credentials.RedisKeyPrefix != "storefront:session:" {
		t.Errorf("RedisKeyPrefix = %q", cfg.Credentials.RedisKeyPrefix)
	}
	if cfg.Stub.Port != "8000" || cfg.Stub.TokenTTL != 24*time.Hour {
		t.Errorf("stub defaults = %+v", cfg.Stub)
	}
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.tirtanusa.id/api")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("CREDENTIALS_BACKEND", "redis")
	t.Setenv("CREDENTIALS_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("STUB_TOKEN_TTL", "30m")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.tirtanusa.id/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.Credentials.Backend != "redis" || cfg.Credentials.RedisAddr != "redis.internal:6380" {
		t.Errorf("credentials = %+v", cfg.Credentials)
	}
	if cfg.Stub.TokenTTL != 30*time.Minute {
		t.Errorf("Stub.TokenTTL = %v", cfg.Stub.TokenTTL)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}
