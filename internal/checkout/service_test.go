package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/core/domain"
	"github.com/tirtanusa/storefront-go/internal/gateway"
)

type stubOrderAPI struct {
	order     *domain.Order
	createErr error
	getErr    error
}

func (s *stubOrderAPI) CreateOrder(_ context.Context, _ gateway.CreateOrderRequest) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.order, nil
}

func (s *stubOrderAPI) GetOrder(_ context.Context, _ string) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

type stubDeliveryAPI struct {
	delivery *domain.Delivery
	err      error
	calls    int
}

func (s *stubDeliveryAPI) GetDeliveryByOrder(_ context.Context, _ string) (*domain.Delivery, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.delivery, nil
}

func newTestService(orders *stubOrderAPI, deliveries *stubDeliveryAPI) *Service {
	return NewService(orders, deliveries, zerolog.Nop())
}

func TestPlaceOrderAttachesDelivery(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: "ord-1", Status: domain.OrderPending}}
	deliveries := &stubDeliveryAPI{delivery: &domain.Delivery{ID: "del-1", OrderID: "ord-1", Status: domain.DeliveryScheduled}}
	svc := newTestService(orders, deliveries)

	view, err := svc.PlaceOrder(context.Background(), gateway.CreateOrderRequest{
		ScheduledDeliveryDate: "2026-09-01",
		PaymentMethod:         "cash",
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if view.Order.ID != "ord-1" {
		t.Fatalf("unexpected order %+v", view.Order)
	}
	if view.Delivery == nil || view.Delivery.ID != "del-1" {
		t.Fatalf("expected delivery attached, got %+v", view.Delivery)
	}
}

func TestPlaceOrderSurvivesDeliveryFetchFailure(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: "ord-2"}}
	deliveries := &stubDeliveryAPI{err: apierror.Remote("gateway timeout", nil)}
	svc := newTestService(orders, deliveries)

	view, err := svc.PlaceOrder(context.Background(), gateway.CreateOrderRequest{
		ScheduledDeliveryDate: "2026-09-01",
		PaymentMethod:         "transfer",
	})
	if err != nil {
		t.Fatalf("PlaceOrder should not fail on delivery fetch, got %v", err)
	}
	if view.Order.ID != "ord-2" {
		t.Fatalf("unexpected order %+v", view.Order)
	}
	if view.Delivery != nil {
		t.Fatalf("expected nil delivery, got %+v", view.Delivery)
	}
	if deliveries.calls != 1 {
		t.Fatalf("expected one delivery lookup, got %d", deliveries.calls)
	}
}

func TestPlaceOrderPropagatesCreateFailure(t *testing.T) {
	createErr := apierror.Validation("cart is empty")
	orders := &stubOrderAPI{createErr: createErr}
	deliveries := &stubDeliveryAPI{}
	svc := newTestService(orders, deliveries)

	_, err := svc.PlaceOrder(context.Background(), gateway.CreateOrderRequest{
		ScheduledDeliveryDate: "2026-09-01",
		PaymentMethod:         "cash",
	})
	if !errors.Is(err, createErr) {
		t.Fatalf("expected create error, got %v", err)
	}
	if deliveries.calls != 0 {
		t.Fatalf("delivery lookup should not run when order creation fails, got %d calls", deliveries.calls)
	}
}

func TestOrderStatusBestEffortDelivery(t *testing.T) {
	orders := &stubOrderAPI{order: &domain.Order{ID: "ord-3", Status: domain.OrderConfirmed}}
	deliveries := &stubDeliveryAPI{delivery: &domain.Delivery{ID: "del-3", OrderID: "ord-3", Status: domain.DeliveryEnRoute}}
	svc := newTestService(orders, deliveries)

	view, err := svc.OrderStatus(context.Background(), "ord-3")
	if err != nil {
		t.Fatalf("OrderStatus: %v", err)
	}
	if view.Delivery == nil || view.Delivery.Status != domain.DeliveryEnRoute {
		t.Fatalf("expected en-route delivery, got %+v", view.Delivery)
	}

	deliveries.err = apierror.Transport(errors.New("dial tcp: connection refused"))
	view, err = svc.OrderStatus(context.Background(), "ord-3")
	if err != nil {
		t.Fatalf("OrderStatus with failing delivery read: %v", err)
	}
	if view.Delivery != nil {
		t.Fatalf("expected nil delivery after read failure, got %+v", view.Delivery)
	}
}

func TestOrderStatusPropagatesOrderFailure(t *testing.T) {
	getErr := apierror.Remote("order not found", nil)
	orders := &stubOrderAPI{getErr: getErr}
	svc := newTestService(orders, &stubDeliveryAPI{})

	if _, err := svc.OrderStatus(context.Background(), "missing"); !errors.Is(err, getErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
}
