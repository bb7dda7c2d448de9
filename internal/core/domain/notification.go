package domain

import "time"

// Notification is a backend-generated message for a user or a depot location
// (order confirmed, delivery en route, low stock, ...). Display only.
type Notification struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	LocationID string    `json:"location_id,omitempty"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}
