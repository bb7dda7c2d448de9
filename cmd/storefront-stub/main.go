// Command storefront-stub runs the in-memory storefront backend for local
// development: the full REST surface the SDK consumes, with dev-grade JWTs
// and Prometheus metrics on /metrics.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tirtanusa/storefront-go/internal/config"
	"github.com/tirtanusa/storefront-go/internal/stubserver"
	"github.com/tirtanusa/storefront-go/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	_, e := stubserver.New(stubserver.Config{
		JWTSecret: cfg.Stub.JWTSecret,
		TokenTTL:  cfg.Stub.TokenTTL,
		Logger:    log,
		Metrics:   true,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Stub.Port).Msg("stub backend listening")
	if err := e.Start(":" + cfg.Stub.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
