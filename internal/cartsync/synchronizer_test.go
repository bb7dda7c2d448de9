package cartsync

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

type stubCartAPI struct {
	cart    *domain.Cart
	getErr  error
	mutErr  error
	gets    int
	adds    int
	updates int
	removes int
	clears  int
}

func (s *stubCartAPI) GetCart(context.Context) (*domain.Cart, error) {
	s.gets++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.cart, nil
}

func (s *stubCartAPI) AddToCart(context.Context, string, int) error {
	s.adds++
	return s.mutErr
}

func (s *stubCartAPI) UpdateCartQuantity(context.Context, string, int) error {
	s.updates++
	return s.mutErr
}

func (s *stubCartAPI) RemoveFromCart(context.Context, string) error {
	s.removes++
	return s.mutErr
}

func (s *stubCartAPI) ClearCart(context.Context) error {
	s.clears++
	return s.mutErr
}

type stubSession struct{ loggedIn bool }

func (s stubSession) IsLoggedIn() bool { return s.loggedIn }

func TestSynchronizer_AddReturnsServerCart(t *testing.T) {
	serverCart := &domain.Cart{
		Items: []domain.CartItem{{ProductID: "7", UnitPrice: 15000, Quantity: 2}},
		Total: 30000,
	}
	api := &stubCartAPI{cart: serverCart}
	sync := New(api, stubSession{loggedIn: true}, zerolog.Nop())

	cart, err := sync.Add(context.Background(), "7", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart != serverCart {
		t.Fatalf("displayed cart must be the re-read result, got %+v", cart)
	}
	if cart.Total != 30000 {
		t.Fatalf("expected server total 30000, got %d", cart.Total)
	}
	if api.adds != 1 || api.gets != 1 {
		t.Fatalf("expected one write then one read, got adds=%d gets=%d", api.adds, api.gets)
	}
}

func TestSynchronizer_NoReadOnWriteFailure(t *testing.T) {
	mutErr := apierror.Remote("stock exhausted", nil)
	api := &stubCartAPI{mutErr: mutErr}
	sync := New(api, stubSession{loggedIn: true}, zerolog.Nop())

	_, err := sync.UpdateQuantity(context.Background(), "7", 5)
	if !errors.Is(err, mutErr) {
		t.Fatalf("expected the mutation error propagated, got %v", err)
	}
	if api.gets != 0 {
		t.Fatalf("a failed write must not trigger a read, got %d reads", api.gets)
	}
}

func TestSynchronizer_StaleSentinelWhenRefreshFails(t *testing.T) {
	api := &stubCartAPI{getErr: apierror.Transport(errors.New("connection reset"))}
	sync := New(api, stubSession{loggedIn: true}, zerolog.Nop())

	_, err := sync.Remove(context.Background(), "7")
	if !errors.Is(err, ErrCartStale) {
		t.Fatalf("expected ErrCartStale, got %v", err)
	}
	if api.removes != 1 || api.gets != 1 {
		t.Fatalf("expected the write to have landed and the read attempted, removes=%d gets=%d", api.removes, api.gets)
	}
}

func TestSynchronizer_StaleErrorPreservesReadFailure(t *testing.T) {
	api := &stubCartAPI{getErr: apierror.Transport(errors.New("connection reset"))}
	sync := New(api, stubSession{loggedIn: true}, zerolog.Nop())

	_, err := sync.Add(context.Background(), "7", 1)
	if !errors.Is(err, ErrCartStale) {
		t.Fatalf("expected ErrCartStale, got %v", err)
	}
	if !apierror.IsKind(err, apierror.KindTransport) {
		t.Fatalf("stale error must expose the read failure's kind, got %v", err)
	}

	api.getErr = apierror.Remote("cart endpoint unavailable", nil)
	_, err = sync.Add(context.Background(), "7", 1)
	if !errors.Is(err, ErrCartStale) {
		t.Fatalf("expected ErrCartStale, got %v", err)
	}
	if !apierror.IsKind(err, apierror.KindRemote) {
		t.Fatalf("stale error must expose the read failure's kind, got %v", err)
	}
}

func TestSynchronizer_RequiresSession(t *testing.T) {
	api := &stubCartAPI{}
	sync := New(api, stubSession{loggedIn: false}, zerolog.Nop())

	_, err := sync.Clear(context.Background())
	if !apierror.IsKind(err, apierror.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if api.clears != 0 || api.gets != 0 {
		t.Fatalf("no session means no calls at all, clears=%d gets=%d", api.clears, api.gets)
	}
}

func TestSynchronizer_ClearReturnsEmptyCart(t *testing.T) {
	api := &stubCartAPI{cart: &domain.Cart{Items: []domain.CartItem{}, Total: 0}}
	sync := New(api, stubSession{loggedIn: true}, zerolog.Nop())

	cart, err := sync.Clear(context.Background())
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}
