// Package checkout turns the current cart into an order and assembles the
// post-checkout view.
package checkout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
	"github.com/tirtanusa/storefront-go/internal/gateway"
)

// OrderAPI and DeliveryAPI are the gateway slices the service needs.
// Satisfied by *gateway.Client.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type DeliveryAPI interface {
	GetDeliveryByOrder(ctx context.Context, orderID string) (*domain.Delivery, error)
}

// OrderView is an order enriched with its delivery, when one could be
// fetched. Delivery is nil whenever the enrichment read failed or no
// delivery exists yet; the order itself is always present.
type OrderView struct {
	Order    *domain.Order
	Delivery *domain.Delivery
}

// Service places orders and builds order views.
type Service struct {
	orders     OrderAPI
	deliveries DeliveryAPI
	log        zerolog.Logger
}

// NewService builds a checkout service.
func NewService(orders OrderAPI, deliveries DeliveryAPI, log zerolog.Logger) *Service {
	return &Service{orders: orders, deliveries: deliveries, log: log}
}

// PlaceOrder creates an order from the current cart contents, then enriches
// the result with a best-effort delivery lookup. Order creation is the
// primary outcome: a failed delivery fetch is logged and leaves
// OrderView.Delivery nil, it never fails the call.
func (s *Service) PlaceOrder(ctx context.Context, req gateway.CreateOrderRequest) (*OrderView, error) {
	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	view := &OrderView{Order: order}
	if delivery, ok := gateway.BestEffort(ctx, s.log, "delivery_by_order", func(ctx context.Context) (*domain.Delivery, error) {
		return s.deliveries.GetDeliveryByOrder(ctx, order.ID)
	}); ok {
		view.Delivery = delivery
	}
	return view, nil
}

// OrderStatus re-reads one order and its delivery for display. The order
// read is primary; the delivery read is best-effort.
func (s *Service) OrderStatus(ctx context.Context, orderID string) (*OrderView, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view := &OrderView{Order: order}
	if delivery, ok := gateway.BestEffort(ctx, s.log, "delivery_by_order", func(ctx context.Context) (*domain.Delivery, error) {
		return s.deliveries.GetDeliveryByOrder(ctx, orderID)
	}); ok {
		view.Delivery = delivery
	}
	return view, nil
}
