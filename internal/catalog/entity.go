// internal/catalog/entity.go
package catalog

// Product is the catalog product DTO served by the remote API
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	IsNew         bool    `json:"isNew,omitempty"`
	Discount      float64 `json:"discount,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	InStock       bool    `json:"inStock"`
}

// Page is the paged result envelope returned by catalog listing endpoints
type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

// ListQuery holds the catalog listing parameters
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
}
