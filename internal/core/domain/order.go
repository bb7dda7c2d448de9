package domain

import "time"

// OrderStatus is the backend-owned lifecycle state of an order. The client
// displays whatever the backend reports and never predicts transitions.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderOutForShip OrderStatus = "out_for_delivery"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentStatus mirrors the backend's payment state for display.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order is created from the cart contents plus scheduling and payment detail.
// Once created it is immutable from the client's perspective except for the
// status fields, which only the backend advances.
type Order struct {
	ID                    string        `json:"id"`
	CustomerID            string        `json:"customer_id"`
	Items                 []CartItem    `json:"items"`
	Total                 int64         `json:"total"`
	ScheduledDeliveryDate string        `json:"scheduled_delivery_date"`
	PaymentMethod         string        `json:"payment_method"`
	Notes                 string        `json:"notes,omitempty"`
	Status                OrderStatus   `json:"status"`
	PaymentStatus         PaymentStatus `json:"payment_status"`
	CreatedAt             time.Time     `json:"created_at,omitzero"`
}
