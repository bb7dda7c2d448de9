package gateway

import (
	"context"

	"github.com/tirtanusa/storefront-go/internal/apierror"
	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// The profile endpoints keep the historical split between customer and
// organization paths; both sides follow the same get/upsert shape.

func errProfileIncomplete() error {
	return apierror.Validation("name, phone and address are required")
}

// GetCustomerProfile returns the caller's customer profile.
func (c *Client) GetCustomerProfile(ctx context.Context) (*domain.CustomerProfile, error) {
	var out domain.CustomerProfile
	if err := c.do(ctx, requestSpec{method: "GET", path: "/customers/profile", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertCustomerProfile creates or replaces the caller's customer profile.
func (c *Client) UpsertCustomerProfile(ctx context.Context, p domain.CustomerProfile) (*domain.CustomerProfile, error) {
	if p.FullName == "" || p.Phone == "" || p.Address == "" {
		return nil, errProfileIncomplete()
	}
	var out domain.CustomerProfile
	spec := requestSpec{method: "POST", path: "/customers/profile-user", body: p, authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomerProfiles returns every customer profile. Admin surface.
func (c *Client) ListCustomerProfiles(ctx context.Context) ([]domain.CustomerProfile, error) {
	var out []domain.CustomerProfile
	if err := c.do(ctx, requestSpec{method: "GET", path: "/customers/profiles", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrganizationProfile returns the caller's organization profile.
func (c *Client) GetOrganizationProfile(ctx context.Context) (*domain.OrganizationProfile, error) {
	var out domain.OrganizationProfile
	if err := c.do(ctx, requestSpec{method: "GET", path: "/organizations/profile-org", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertOrganizationProfile creates or replaces the caller's organization
// profile.
func (c *Client) UpsertOrganizationProfile(ctx context.Context, p domain.OrganizationProfile) (*domain.OrganizationProfile, error) {
	if p.Name == "" || p.Phone == "" || p.Address == "" {
		return nil, errProfileIncomplete()
	}
	var out domain.OrganizationProfile
	spec := requestSpec{method: "POST", path: "/organizations/profile-org-personalisasi", body: p, authRequired: true}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrganizationProfiles returns every organization profile. Admin surface.
func (c *Client) ListOrganizationProfiles(ctx context.Context) ([]domain.OrganizationProfile, error) {
	var out []domain.OrganizationProfile
	if err := c.do(ctx, requestSpec{method: "GET", path: "/organizations/all-profiles-org", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
