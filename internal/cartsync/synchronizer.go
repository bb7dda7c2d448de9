// Package cartsync guarantees the displayed cart is never a locally
// predicted value: every successful mutation is followed by a full re-read,
// and that read's result is the only cart the caller ever sees.
//
// The extra round trip per mutation is deliberate. It removes all cart-merge
// and optimistic-update logic from the client; the cart is small and the
// server is authoritative.
package cartsync

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/core/domain"
	"github.com/tirtanusa/storefront-go/internal/metrics"
)

// ErrCartStale marks a mutation that landed while the follow-up read failed.
// The mutation stands; the caller's displayed cart is stale until a retried
// GetCart succeeds. This is the documented inconsistency window, not a
// rollback. Match with errors.Is; the returned error wraps the read failure.
var ErrCartStale = errors.New("cart updated but refresh failed, retry the read")

// staleError carries the read failure behind ErrCartStale so callers can
// distinguish a transport blip from a backend rejection when deciding how to
// retry. errors.Is(err, ErrCartStale) still matches.
type staleError struct {
	cause error
}

func (e *staleError) Error() string {
	return ErrCartStale.Error() + ": " + e.cause.Error()
}

func (e *staleError) Unwrap() error { return e.cause }

func (e *staleError) Is(target error) bool { return target == ErrCartStale }

// CartAPI is the slice of the gateway the synchronizer drives. Satisfied by
// *gateway.Client.
type CartAPI interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	UpdateCartQuantity(ctx context.Context, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
}

// SessionChecker is the login predicate the synchronizer gates on.
// Satisfied by *session.Manager.
type SessionChecker interface {
	IsLoggedIn() bool
}

// Synchronizer serializes nothing across calls: two overlapping mutations
// may interleave their write/read pairs and the last read wins. The server
// cart stays authoritative either way. Within one call the write strictly
// precedes the read.
type Synchronizer struct {
	api  CartAPI
	sess SessionChecker
	log  zerolog.Logger
}

// New builds a Synchronizer.
func New(api CartAPI, sess SessionChecker, log zerolog.Logger) *Synchronizer {
	return &Synchronizer{api: api, sess: sess, log: log.With().Str("component", "cartsync").Logger()}
}

// Add appends quantity units of a product and returns the fresh cart.
func (s *Synchronizer) Add(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, "add", func(ctx context.Context) error {
		return s.api.AddToCart(ctx, productID, quantity)
	})
}

// UpdateQuantity sets a line's quantity and returns the fresh cart.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, "update", func(ctx context.Context) error {
		return s.api.UpdateCartQuantity(ctx, productID, quantity)
	})
}

// Remove deletes a line and returns the fresh cart.
func (s *Synchronizer) Remove(ctx context.Context, productID string) (*domain.Cart, error) {
	return s.mutate(ctx, "remove", func(ctx context.Context) error {
		return s.api.RemoveFromCart(ctx, productID)
	})
}

// Clear empties the cart and returns the fresh (empty) cart.
func (s *Synchronizer) Clear(ctx context.Context) (*domain.Cart, error) {
	return s.mutate(ctx, "clear", func(ctx context.Context) error {
		return s.api.ClearCart(ctx)
	})
}

// mutate is the write-then-unconditionally-reread path shared by all cart
// mutations:
//
//  1. no session → fail before any network call;
//  2. mutation fails → propagate, no read is issued, the previously
//     displayed cart stays authoritative;
//  3. mutation succeeds → the follow-up read's cart is the new truth;
//  4. mutation succeeds, read fails → ErrCartStale (see above).
func (s *Synchronizer) mutate(ctx context.Context, op string, fn func(context.Context) error) (*domain.Cart, error) {
	if !s.sess.IsLoggedIn() {
		return nil, apierror.Unauthenticated("")
	}

	if err := fn(ctx); err != nil {
		metrics.CartSyncTotal.WithLabelValues(op, "mutation_failed").Inc()
		return nil, err
	}

	cart, err := s.api.GetCart(ctx)
	if err != nil {
		metrics.CartSyncTotal.WithLabelValues(op, "stale").Inc()
		s.log.Warn().Err(err).Str("operation", op).
			Msg("cart refresh failed after successful mutation")
		return nil, &staleError{cause: err}
	}

	metrics.CartSyncTotal.WithLabelValues(op, "ok").Inc()
	return cart, nil
}
