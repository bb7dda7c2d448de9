package domain

import (
	"errors"
	"time"
)

// DeliveryStatus represents the lifecycle state of a delivery run.
type DeliveryStatus string

const (
	DeliveryScheduled DeliveryStatus = "scheduled"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryEnRoute   DeliveryStatus = "en_route"
	DeliveryCompleted DeliveryStatus = "completed"
	DeliveryFailed    DeliveryStatus = "failed"
)

// validDeliveryTransitions defines the transitions the stub backend enforces.
// The SDK itself only displays statuses.
var validDeliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryScheduled: {DeliveryAssigned, DeliveryFailed},
	DeliveryAssigned:  {DeliveryEnRoute, DeliveryFailed},
	DeliveryEnRoute:   {DeliveryCompleted, DeliveryFailed},
}

var ErrInvalidDeliveryTransition = errors.New("invalid delivery status transition")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range validDeliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Delivery tracks the physical hand-off of one order.
type Delivery struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"order_id"`
	DriverName    string         `json:"driver_name,omitempty"`
	Address       string         `json:"address"`
	ScheduledDate string         `json:"scheduled_date"`
	Status        DeliveryStatus `json:"status"`
	Notes         string         `json:"notes,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at,omitzero"`
}
