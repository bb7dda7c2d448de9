package domain

import "time"

const (
	RoleCustomer     = "customer"
	RoleOrganization = "organization"
	RoleAdmin        = "admin"
)

// ValidRole reports whether role is one of the roles the platform issues
// tokens for.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleOrganization || role == RoleAdmin
}

// User models an account as returned by the auth endpoints. The password hash
// never leaves the backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// CustomerProfile is the delivery-facing profile a customer maintains.
type CustomerProfile struct {
	UserID               string `json:"user_id,omitempty"`
	FullName             string `json:"full_name"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty"`
}

// OrganizationProfile is the bulk-buyer profile for offices, shops and event
// organisers.
type OrganizationProfile struct {
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxID         string `json:"tax_id,omitempty"`
}
