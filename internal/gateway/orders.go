package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// CreateOrderRequest is the checkout payload. The backend snapshots the
// current cart into the order and clears it; the client never sends line
// items of its own.
type CreateOrderRequest struct {
	ScheduledDeliveryDate string `json:"scheduled_delivery_date" validate:"required"`
	PaymentMethod         string `json:"payment_method" validate:"required,oneof=cash transfer ewallet"`
	Notes                 string `json:"notes,omitempty"`
}

type updateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required"`
}

type updatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status" validate:"required"`
}

// CreateOrder places an order from the current cart contents.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.Order
	if err := c.do(ctx, requestSpec{method: "POST", path: "/orders", body: req, authRequired: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrders returns the orders visible to the caller (all of them for an
// admin token, own orders otherwise).
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, requestSpec{method: "GET", path: "/orders", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCustomerOrders returns the orders of one customer.
func (c *Client) ListCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	if customerID == "" {
		return nil, errMissingID("customer")
	}
	var out []domain.Order
	spec := requestSpec{method: "GET", path: "/orders/customer/" + url.PathEscape(customerID), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder fetches one order with its current (backend-owned) status fields.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, errMissingID("order")
	}
	var out domain.Order
	spec := requestSpec{method: "GET", path: "/orders/" + url.PathEscape(orderID), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus advances an order's status. Admin surface.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if orderID == "" {
		return nil, errMissingID("order")
	}
	req := updateOrderStatusRequest{Status: status}
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.Order
	spec := requestSpec{method: "PUT", path: "/orders/" + url.PathEscape(orderID) + "/status", body: req, authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaymentStatus records a payment state change. Admin surface.
func (c *Client) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error) {
	if orderID == "" {
		return nil, errMissingID("order")
	}
	req := updatePaymentStatusRequest{PaymentStatus: status}
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.Order
	spec := requestSpec{method: "PUT", path: "/orders/" + url.PathEscape(orderID) + "/payment", body: req, authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
