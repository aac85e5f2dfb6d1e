// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/catalog"
	"github.com/your-org/storefront-gateway/internal/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlist *wishlist.Store
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistStore *wishlist.Store) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlistStore}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"items": h.wishlist.Items(),
			"count": h.wishlist.Count(),
		},
	})
}

// Toggle handles POST /wishlist/toggle. The product payload is kept whole so
// the entry can render without a catalog round trip.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var product catalog.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product id is required",
		})
		return
	}

	h.wishlist.Toggle(product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"data": gin.H{
			"in_wishlist": h.wishlist.Contains(product.ID),
			"count":       h.wishlist.Count(),
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	h.wishlist.Remove(c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data": gin.H{
			"items": h.wishlist.Items(),
		},
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	h.wishlist.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
	})
}

// MoveToCart handles POST /wishlist/:productId/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	if err := h.wishlist.MoveToCart(c.Param("productId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart successfully",
		"data": gin.H{
			"items": h.wishlist.Items(),
		},
	})
}

// GetWishlistCount handles GET /wishlist/count
func (h *WishlistHandler) GetWishlistCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist count retrieved successfully",
		"data": gin.H{
			"count": h.wishlist.Count(),
		},
	})
}
