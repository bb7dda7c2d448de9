package credential

import (
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// Storage keys. The token is persisted both whole and split into its three
// segments; a load only succeeds when all three segments are present, so a
// partially written credential reads back as "no token".
const (
	keyToken     = "token"
	keyHeader    = "token_header"
	keyPayload   = "token_payload"
	keySignature = "token_signature"
	keyUser      = "user"
)

// Store persists the session token and the cached user record. All methods
// are synchronous reads/writes of the underlying Storage; claims are decoded
// from the stored token on every call and never cached.
type Store struct {
	storage Storage
}

// NewStore wraps the given storage.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Save persists a three-segment token whole and split. Empty or malformed
// input is a silent no-op: the previous credential, if any, stays in place.
func (s *Store) Save(token string) {
	if token == "" {
		return
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return
	}
	s.storage.Set(keyHeader, parts[0])
	s.storage.Set(keyPayload, parts[1])
	s.storage.Set(keySignature, parts[2])
	s.storage.Set(keyToken, token)
}

// Load reassembles the token from its stored segments. Any missing segment
// means no token.
func (s *Store) Load() (string, bool) {
	header, ok := s.storage.Get(keyHeader)
	if !ok || header == "" {
		return "", false
	}
	payload, ok := s.storage.Get(keyPayload)
	if !ok || payload == "" {
		return "", false
	}
	signature, ok := s.storage.Get(keySignature)
	if !ok || signature == "" {
		return "", false
	}
	return header + "." + payload + "." + signature, true
}

// Clear removes the token and the cached user record. Idempotent.
func (s *Store) Clear() {
	s.storage.Remove(keyHeader)
	s.storage.Remove(keyPayload)
	s.storage.Remove(keySignature)
	s.storage.Remove(keyToken)
	s.storage.Remove(keyUser)
}

// Claims decodes the payload of the stored token, or returns nil when no
// token is stored or the payload does not decode. The signature is not
// verified here: the client never holds the signing secret, and the backend
// re-checks authenticity on every call anyway.
func (s *Store) Claims() *domain.Claims {
	token, ok := s.Load()
	if !ok {
		return nil
	}
	claims := &domain.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	claims.Normalize()
	return claims
}

// SaveUser caches the user record returned by login/register for display.
func (s *Store) SaveUser(user *domain.User) {
	if user == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	s.storage.Set(keyUser, string(raw))
}

// User returns the cached user record, if any.
func (s *Store) User() (*domain.User, bool) {
	raw, ok := s.storage.Get(keyUser)
	if !ok || raw == "" {
		return nil, false
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}
