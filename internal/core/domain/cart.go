package domain

// CartItem is one pending purchase line. Prices are in the smallest currency
// unit (rupiah), as quoted by the backend at the time the item was added.
type CartItem struct {
	ProductID     string        `json:"product_id"`
	ContainerType ContainerType `json:"container_type,omitempty"`
	UnitPrice     int64         `json:"unit_price"`
	Quantity      int           `json:"quantity"`
}

// Cart is the server-owned cart for the current user. The client never
// mutates it locally: every displayed cart is the result of a fresh read
// issued after the most recent successful write.
type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// ComputedTotal recomputes the total from the line items. It exists for
// display cross-checks only; the server's Total field stays authoritative.
func (c *Cart) ComputedTotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

// CartValidation is the backend's answer to GET /cart/validate: whether the
// cart can still be checked out as-is (stock, price drift).
type CartValidation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}
