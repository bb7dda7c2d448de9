package domain

import "time"

// ReplenishmentStatus tracks a restocking order raised for a depot location.
type ReplenishmentStatus string

const (
	ReplenishmentOpen      ReplenishmentStatus = "open"
	ReplenishmentCompleted ReplenishmentStatus = "completed"
)

// ReplenishmentOrder asks the supplier to restock a product at a location.
type ReplenishmentOrder struct {
	ID         string              `json:"id"`
	LocationID string              `json:"location_id"`
	ProductID  string              `json:"product_id"`
	Quantity   int                 `json:"quantity"`
	Status     ReplenishmentStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at,omitzero"`
}

// StockLevel is the current and target stock of one product at one location.
type StockLevel struct {
	LocationID   string `json:"location_id"`
	ProductID    string `json:"product_id"`
	CurrentLevel int    `json:"current_level"`
	TargetLevel  int    `json:"target_level"`
}

// LowOnStock reports whether the location has fallen below target.
func (s StockLevel) LowOnStock() bool {
	return s.CurrentLevel < s.TargetLevel
}

// StockOutRecord is one historical stock-out incident at a location.
type StockOutRecord struct {
	LocationID string    `json:"location_id"`
	ProductID  string    `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Restocked  bool      `json:"restocked"`
}
