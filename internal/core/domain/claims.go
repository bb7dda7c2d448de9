package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token. It is always re-derived
// from the stored token, never cached independently.
//
// Older backend builds put the user id in "id" instead of "sub"; Normalize
// folds both into Subject so downstream code has one canonical identity field.
type Claims struct {
	UserID      string   `json:"id,omitempty"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Normalize applies the id→sub fallback.
func (c *Claims) Normalize() {
	if c.Subject == "" && c.UserID != "" {
		c.Subject = c.UserID
	}
}

// ExpiresAfter reports whether the token is still valid at t. A missing exp
// claim fails closed.
func (c *Claims) ExpiresAfter(t time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.After(t)
}

// HasPermission reports whether name is one of the token's capabilities.
// An absent permissions list grants nothing.
func (c *Claims) HasPermission(name string) bool {
	for _, p := range c.Permissions {
		if p == name {
			return true
		}
	}
	return false
}
