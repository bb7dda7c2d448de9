package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// CreateDeliveryRequest schedules a delivery run for an order. Admin surface;
// route planning stays entirely server-side.
type CreateDeliveryRequest struct {
	OrderID       string `json:"order_id" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	DriverName    string `json:"driver_name,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type updateDeliveryStatusRequest struct {
	Status domain.DeliveryStatus `json:"status" validate:"required"`
}

// CreateDelivery schedules a delivery for an order.
func (c *Client) CreateDelivery(ctx context.Context, req CreateDeliveryRequest) (*domain.Delivery, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.Delivery
	if err := c.do(ctx, requestSpec{method: "POST", path: "/deliveries", body: req, authRequired: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDelivery fetches one delivery by id.
func (c *Client) GetDelivery(ctx context.Context, deliveryID string) (*domain.Delivery, error) {
	if deliveryID == "" {
		return nil, errMissingID("delivery")
	}
	var out domain.Delivery
	spec := requestSpec{method: "GET", path: "/deliveries/" + url.PathEscape(deliveryID), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDeliveryByOrder fetches the delivery attached to an order, the read used
// to enrich the order view after checkout.
func (c *Client) GetDeliveryByOrder(ctx context.Context, orderID string) (*domain.Delivery, error) {
	if orderID == "" {
		return nil, errMissingID("order")
	}
	var out domain.Delivery
	spec := requestSpec{method: "GET", path: "/deliveries/order/" + url.PathEscape(orderID), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDeliveryStatus advances a delivery's status. Driver/admin surface.
func (c *Client) UpdateDeliveryStatus(ctx context.Context, deliveryID string, status domain.DeliveryStatus) (*domain.Delivery, error) {
	if deliveryID == "" {
		return nil, errMissingID("delivery")
	}
	req := updateDeliveryStatusRequest{Status: status}
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.Delivery
	spec := requestSpec{method: "PUT", path: "/deliveries/" + url.PathEscape(deliveryID) + "/status", body: req, authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDriverDeliveries returns the runs assigned to one driver.
func (c *Client) ListDriverDeliveries(ctx context.Context, driverName string) ([]domain.Delivery, error) {
	if driverName == "" {
		return nil, errMissingID("driver")
	}
	var out []domain.Delivery
	spec := requestSpec{method: "GET", path: "/deliveries/driver/" + url.PathEscape(driverName), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDeliveries returns every delivery. Admin surface.
func (c *Client) ListDeliveries(ctx context.Context) ([]domain.Delivery, error) {
	var out []domain.Delivery
	if err := c.do(ctx, requestSpec{method: "GET", path: "/deliveries", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
