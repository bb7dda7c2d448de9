// Package storefront bundles the SDK's pieces behind one constructor: a
// credential store bound per configuration, the typed API gateway, the
// session manager, the cart synchronizer, and the checkout service.
package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tirtanusa/storefront-go/internal/cartsync"
	"github.com/tirtanusa/storefront-go/internal/checkout"
	"github.com/tirtanusa/storefront-go/internal/config"
	"github.com/tirtanusa/storefront-go/internal/credential"
	"github.com/tirtanusa/storefront-go/internal/gateway"
	"github.com/tirtanusa/storefront-go/internal/session"
	"github.com/tirtanusa/storefront-go/pkg/logger"
)

// SDK is one isolated storefront session: its own credential store, its own
// gateway. Construct several to model several users side by side.
type SDK struct {
	Credentials *credential.Store
	API         *gateway.Client
	Session     *session.Manager
	Cart        *cartsync.Synchronizer
	Checkout    *checkout.Service
}

// New resolves configuration from the environment and wires the SDK.
func New(ctx context.Context) (*SDK, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig wires the SDK from an already-resolved configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*SDK, error) {
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	storage, err := buildStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	creds := credential.NewStore(storage)

	api := gateway.New(gateway.Config{
		BaseURL:     cfg.APIBaseURL,
		HTTPClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		Credentials: creds,
		Logger:      &log,
	})

	sess := session.NewManager(creds, api, log)
	return &SDK{
		Credentials: creds,
		API:         api,
		Session:     sess,
		Cart:        cartsync.New(api, sess, log),
		Checkout:    checkout.NewService(api, api, log),
	}, nil
}

func buildStorage(ctx context.Context, cfg *config.Config) (credential.Storage, error) {
	log := logger.Get()
	switch cfg.Credentials.Backend {
	case "memory":
		return credential.NewMemoryStorage(), nil
	case "file":
		return credential.NewFileStorage(cfg.Credentials.File, log), nil
	case "redis":
		client, err := credential.Connect(ctx, cfg.Credentials.RedisAddr, cfg.Credentials.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("credential redis: %w", err)
		}
		return credential.NewRedisStorage(client, cfg.Credentials.RedisKeyPrefix, log), nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", cfg.Credentials.Backend)
	}
}
