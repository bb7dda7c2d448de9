package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// CreateReplenishmentRequest raises a restocking order for a depot location.
// The replenishment decision logic itself lives in the backend.
type CreateReplenishmentRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	ProductID  string `json:"product_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type updateStockLevelsRequest struct {
	CurrentLevel int `json:"current_level" validate:"gte=0"`
	TargetLevel  int `json:"target_level" validate:"gt=0"`
}

// CreateReplenishment raises a restocking order.
func (c *Client) CreateReplenishment(ctx context.Context, req CreateReplenishmentRequest) (*domain.ReplenishmentOrder, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.ReplenishmentOrder
	if err := c.do(ctx, requestSpec{method: "POST", path: "/replenishments", body: req, authRequired: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReplenishmentStatus returns the open replenishment orders for one
// location.
func (c *Client) GetReplenishmentStatus(ctx context.Context, locationID string) ([]domain.ReplenishmentOrder, error) {
	if locationID == "" {
		return nil, errMissingID("location")
	}
	var out []domain.ReplenishmentOrder
	spec := requestSpec{method: "GET", path: "/replenishments/status/" + url.PathEscape(locationID), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStockLevels records the current and target stock for a product at a
// location.
func (c *Client) UpdateStockLevels(ctx context.Context, locationID, productID string, current, target int) (*domain.StockLevel, error) {
	if locationID == "" {
		return nil, errMissingID("location")
	}
	if productID == "" {
		return nil, errMissingID("product")
	}
	req := updateStockLevelsRequest{CurrentLevel: current, TargetLevel: target}
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out domain.StockLevel
	spec := requestSpec{
		method:       "PUT",
		path:         "/replenishments/stock/" + url.PathEscape(locationID) + "/" + url.PathEscape(productID),
		body:         req,
		authRequired: true,
	}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLowStock returns the stock levels below target, optionally filtered by
// location.
func (c *Client) ListLowStock(ctx context.Context, locationID string) ([]domain.StockLevel, error) {
	path := "/replenishments/low-stock"
	if locationID != "" {
		path += "?location_id=" + url.QueryEscape(locationID)
	}
	var out []domain.StockLevel
	if err := c.do(ctx, requestSpec{method: "GET", path: path, authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStockOutHistory returns past stock-out incidents for a location within
// the optional date range (RFC 3339 dates).
func (c *Client) ListStockOutHistory(ctx context.Context, locationID, startDate, endDate string) ([]domain.StockOutRecord, error) {
	if locationID == "" {
		return nil, errMissingID("location")
	}
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	path := "/replenishments/stock-out/" + url.PathEscape(locationID)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var out []domain.StockOutRecord
	if err := c.do(ctx, requestSpec{method: "GET", path: path, authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompleteReplenishment marks a replenishment order as fulfilled.
func (c *Client) CompleteReplenishment(ctx context.Context, replenishmentID string) (*domain.ReplenishmentOrder, error) {
	if replenishmentID == "" {
		return nil, errMissingID("replenishment")
	}
	var out domain.ReplenishmentOrder
	spec := requestSpec{
		method:       "PUT",
		path:         "/replenishments/" + url.PathEscape(replenishmentID) + "/complete",
		authRequired: true,
	}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
