// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cart *cart.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store) *CartHandler {
	return &CartHandler{cart: cartStore}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items": h.cart.Items(),
			"total": h.cart.Total(),
			"count": h.cart.ItemsCount(),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.NewItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cart.Add(req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"items": h.cart.Items(),
			"total": h.cart.Total(),
		},
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cart.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data": gin.H{
			"items": h.cart.Items(),
			"total": h.cart.Total(),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.cart.Remove(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data": gin.H{
			"items": h.cart.Items(),
			"total": h.cart.Total(),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cart.ItemsCount(),
		},
	})
}

// GetSidebar handles GET /cart/sidebar
func (h *CartHandler) GetSidebar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sidebar state retrieved successfully",
		"data": gin.H{
			"open": h.cart.SidebarOpen(),
		},
	})
}

// ToggleSidebar handles POST /cart/sidebar/toggle
func (h *CartHandler) ToggleSidebar(c *gin.Context) {
	h.cart.ToggleSidebar()

	c.JSON(http.StatusOK, gin.H{
		"message": "Sidebar toggled",
		"data": gin.H{
			"open": h.cart.SidebarOpen(),
		},
	})
}
