// internal/wishlist/entity.go
package wishlist

import "time"

// Item is a wishlist entry with denormalized product display fields
type Item struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	IsNew         bool      `json:"isNew,omitempty"`
	Discount      float64   `json:"discount,omitempty"`
	DateAdded     time.Time `json:"dateAdded"`
	InStock       bool      `json:"inStock"`
}
