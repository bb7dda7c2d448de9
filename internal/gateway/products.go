package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// errMissingID is the shared validation error for path parameters.
func errMissingID(what string) error {
	return apierror.Validation(what + " id is required")
}

// ListProducts fetches the full catalog. No auth required, no client cache:
// the last fetch is trusted as-is.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, requestSpec{method: "GET", path: "/products/allproduct"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one catalog entry.
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, errMissingID("product")
	}
	var out domain.Product
	if err := c.do(ctx, requestSpec{method: "GET", path: "/products/" + url.PathEscape(productID)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
