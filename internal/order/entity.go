// internal/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront-gateway/internal/cart"
)

// Address is a shipping address captured during checkout
type Address struct {
	FullName   string `json:"fullName" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,phone"`
	Street     string `json:"street" validate:"required,min=5"`
	City       string `json:"city" validate:"required,min=2"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required,postcode"`
	Country    string `json:"country" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

// PlaceRequest is the order submission payload
type PlaceRequest struct {
	Items           []cart.Item `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
}

// Order is an order as reported by the remote API
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Page is the paged order history envelope
type Page struct {
	Items      []Order `json:"items"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
}
