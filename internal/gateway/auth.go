package gateway

import (
	"context"
	"net/url"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// AuthResponse is the login/register payload: the issued token plus the user
// record. Both are returned verbatim; persisting them is the session
// manager's job.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer organization admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account. No auth required.
func (c *Client) Register(ctx context.Context, email, password, role string) (*AuthResponse, error) {
	req := registerRequest{Email: email, Password: password, Role: role}
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := c.do(ctx, requestSpec{method: "POST", path: "/auth/register", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token. No auth required.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := loginRequest{Email: email, Password: password}
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := c.do(ctx, requestSpec{method: "POST", path: "/auth/login", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns every account. Admin only, enforced server-side.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, requestSpec{method: "GET", path: "/auth/users", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Profile returns the authenticated account's own record.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, requestSpec{method: "GET", path: "/auth/profile", authRequired: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleUserStatus flips an account between active and disabled. Admin only.
func (c *Client) ToggleUserStatus(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, errMissingID("user")
	}
	var out domain.User
	spec := requestSpec{
		method:       "PUT",
		path:         "/auth/users/" + url.PathEscape(userID) + "/toggle-status",
		authRequired: true,
	}
	if err := c.do(ctx, spec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
