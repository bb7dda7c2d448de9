package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// The cart endpoints wrap their payloads in {success, data, message}; a 2xx
// without the success marker is treated as a failure (the backend commits to
// the envelope, not the transport status).

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type updateCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Zero is allowed: the backend interprets it as removal.
	Quantity int `json:"quantity" validate:"gte=0"`
}

// GetCart reads the server-owned cart for the current user.
func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var out domain.Cart
	spec := requestSpec{method: "GET", path: "/cart", authRequired: true, enveloped: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCart appends quantity units of a product. Quantity must be positive;
// bad input fails locally without a round trip.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	req := addToCartRequest{ProductID: productID, Quantity: quantity}
	if err := c.checkRequest(req); err != nil {
		return err
	}
	spec := requestSpec{method: "POST", path: "/cart/add", body: req, authRequired: true, enveloped: true}
	return c.do(ctx, spec, nil)
}

// UpdateCartQuantity sets the quantity of an existing line. Zero removes it.
func (c *Client) UpdateCartQuantity(ctx context.Context, productID string, quantity int) error {
	req := updateCartRequest{ProductID: productID, Quantity: quantity}
	if err := c.checkRequest(req); err != nil {
		return err
	}
	spec := requestSpec{method: "PUT", path: "/cart/update", body: req, authRequired: true, enveloped: true}
	return c.do(ctx, spec, nil)
}

// RemoveFromCart deletes one line item.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) error {
	if productID == "" {
		return errMissingID("product")
	}
	spec := requestSpec{
		method:       "DELETE",
		path:         "/cart/item/" + url.PathEscape(productID),
		authRequired: true,
		enveloped:    true,
	}
	return c.do(ctx, spec, nil)
}

// ClearCart empties the cart server-side.
func (c *Client) ClearCart(ctx context.Context) error {
	spec := requestSpec{method: "DELETE", path: "/cart/clear", authRequired: true, enveloped: true}
	return c.do(ctx, spec, nil)
}

// ValidateCart asks the backend whether the cart can still be checked out
// as-is (stock levels, price drift).
func (c *Client) ValidateCart(ctx context.Context) (*domain.CartValidation, error) {
	var out domain.CartValidation
	spec := requestSpec{method: "GET", path: "/cart/validate", authRequired: true, enveloped: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
