// internal/interfaces/http/handlers/orders.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/order"
)

// OrderHandler handles order history endpoints. Order placement goes through
// the checkout flow, never directly through here.
type OrderHandler struct {
	orders *order.Client
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Client) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.orders.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    result,
	})
}
