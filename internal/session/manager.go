// Package session answers "who is logged in" and drives the login, register
// and logout flows. Every predicate is a pure function of the credential
// store's current content; nothing here caches identity state that could
// drift from the stored token.
package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
	"github.com/tirtanusa/storefront-go/internal/credential"
	"github.com/tirtanusa/storefront-go/internal/gateway"
)

// AuthAPI is the slice of the gateway the manager needs. Satisfied by
// *gateway.Client; tests substitute a stub.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*gateway.AuthResponse, error)
	Register(ctx context.Context, email, password, role string) (*gateway.AuthResponse, error)
}

// Manager holds its dependencies explicitly so tests can run several
// isolated sessions side by side.
type Manager struct {
	store *credential.Store
	api   AuthAPI
	log   zerolog.Logger
	now   func() time.Time
}

// Option tweaks a Manager at construction time.
type Option func(*Manager)

// WithClock substitutes the time source, used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager builds a Manager over the given credential store and auth API.
func NewManager(store *credential.Store, api AuthAPI, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{store: store, api: api, log: log, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsLoggedIn reports whether a token is stored, decodes, and has not expired.
// Any ambiguity fails closed.
func (m *Manager) IsLoggedIn() bool {
	claims := m.store.Claims()
	return claims != nil && claims.ExpiresAfter(m.now())
}

// IsAdmin reports whether the stored token carries the admin role.
func (m *Manager) IsAdmin() bool { return m.hasRole(domain.RoleAdmin) }

// IsOrganization reports whether the stored token carries the organization
// role.
func (m *Manager) IsOrganization() bool { return m.hasRole(domain.RoleOrganization) }

// IsCustomer reports whether the stored token carries the customer role.
func (m *Manager) IsCustomer() bool { return m.hasRole(domain.RoleCustomer) }

func (m *Manager) hasRole(role string) bool {
	claims := m.store.Claims()
	return claims != nil && claims.Role == role
}

// HasPermission reports whether the stored token grants the named capability.
func (m *Manager) HasPermission(name string) bool {
	claims := m.store.Claims()
	return claims != nil && claims.HasPermission(name)
}

// CurrentUser returns the decoded claims, or nil when no valid token is
// stored.
func (m *Manager) CurrentUser() *domain.Claims {
	return m.store.Claims()
}

// CachedUser returns the user record persisted at login/register time. It is
// display data only; authorization always goes through the claims.
func (m *Manager) CachedUser() (*domain.User, bool) {
	return m.store.User()
}

// Login authenticates and, when the response carries a token, persists it
// together with the returned user record. The backend payload is returned
// verbatim.
func (m *Manager) Login(ctx context.Context, email, password string) (*gateway.AuthResponse, error) {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.persist(res)
	return res, nil
}

// Register creates an account and logs it in when a token comes back.
func (m *Manager) Register(ctx context.Context, email, password, role string) (*gateway.AuthResponse, error) {
	res, err := m.api.Register(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	m.persist(res)
	return res, nil
}

func (m *Manager) persist(res *gateway.AuthResponse) {
	if res == nil || res.Token == "" {
		return
	}
	m.store.Save(res.Token)
	m.store.SaveUser(res.User)
	m.log.Debug().Msg("session established")
}

// Logout clears the stored credential and cached user. Purely local: no
// backend call is made, the token simply runs out its natural expiry
// server-side.
func (m *Manager) Logout() {
	m.store.Clear()
	m.log.Debug().Msg("session cleared")
}
