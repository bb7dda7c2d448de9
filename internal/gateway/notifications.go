package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// ListUserNotifications returns the caller's notifications, newest first.
func (c *Client) ListUserNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.do(ctx, requestSpec{method: "GET", path: "/notifications/user", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLocationNotifications returns the notifications for a depot location.
func (c *Client) ListLocationNotifications(ctx context.Context, locationID string) ([]domain.Notification, error) {
	if locationID == "" {
		return nil, errMissingID("location")
	}
	var out []domain.Notification
	spec := requestSpec{method: "GET", path: "/notifications/location/" + url.PathEscape(locationID), authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return out, nil
}
