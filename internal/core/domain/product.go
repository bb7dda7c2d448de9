package domain

// ContainerType identifies the bottle or gallon format a product ships in.
type ContainerType string

const (
	ContainerGallon19L ContainerType = "gallon_19l"
	ContainerBottle15L ContainerType = "bottle_1500ml"
	ContainerBottle600 ContainerType = "bottle_600ml"
	ContainerCup240    ContainerType = "cup_240ml"
)

// Product is a read-only catalog entity. The client trusts the last fetch and
// keeps no cache beyond it.
type Product struct {
	ID            string        `json:"product_id"`
	ContainerType ContainerType `json:"container_type"`
	Description   string        `json:"description"`
	UnitPrice     int64         `json:"unit_price"`
	ImageURL      string        `json:"image_url,omitempty"`
}
