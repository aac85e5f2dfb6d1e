// internal/cart/entity.go
package cart

// Item is a single cart line: one product+variant combination and its quantity
type Item struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// NewItem is the input for adding a product to the cart. Identity and
// quantity are assigned by the store.
type NewItem struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gte=0"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Image     string  `json:"image"`
}

// variantKey returns the deduplication key: adding a product that is already
// present with the same size and color increments the existing line
func (n NewItem) variantKey() variantKey {
	return variantKey{ProductID: n.ProductID, Size: n.Size, Color: n.Color}
}

func (i Item) variantKey() variantKey {
	return variantKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

type variantKey struct {
	ProductID string
	Size      string
	Color     string
}
