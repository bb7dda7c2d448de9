package gateway

import (
	"context"

	"github.com/rs/zerolog"
)

// BestEffort runs a read performed purely to enrich a display after a
// primary operation already succeeded. It never returns an error: failures
// are logged and reported as a missing value, so a secondary fetch can never
// be accidentally promoted to a hard failure.
func BestEffort[T any](ctx context.Context, log zerolog.Logger, what string, fetch func(context.Context) (T, error)) (T, bool) {
	v, err := fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Str("fetch", what).Msg("best-effort fetch failed")
		var zero T
		return zero, false
	}
	return v, true
}
