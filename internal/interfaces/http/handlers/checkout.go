// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/cart"
	"github.com/your-org/storefront-gateway/internal/checkout"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/order"
)

// CheckoutHandler handles the checkout flow. One checkout is active at a
// time; starting a new one replaces any unfinished coordinator.
type CheckoutHandler struct {
	config *config.Config
	cart   *cart.Store
	orders *order.Client
	hub    *notify.Hub
	logger *logrus.Logger

	mu      sync.Mutex
	current *checkout.Coordinator
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cfg *config.Config, cartStore *cart.Store, orders *order.Client, hub *notify.Hub, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		config: cfg,
		cart:   cartStore,
		orders: orders,
		hub:    hub,
		logger: logger,
	}
}

// Start handles POST /checkout
func (h *CheckoutHandler) Start(c *gin.Context) {
	if h.cart.ItemsCount() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	coord := checkout.NewCoordinator(h.config, h.cart, h.orders, h.hub, h.logger)

	h.mu.Lock()
	h.current = coord
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checkout started",
		"data": gin.H{
			"steps":   coord.Steps(),
			"summary": coord.Summary(),
		},
	})
}

// GetSteps handles GET /checkout/steps
func (h *CheckoutHandler) GetSteps(c *gin.Context) {
	coord, ok := h.coordinator(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout steps retrieved successfully",
		"data": gin.H{
			"steps":        coord.Steps(),
			"current_step": coord.CurrentStep(),
			"completed":    coord.Completed(),
		},
	})
}

// GoToStep handles POST /checkout/steps/:index
func (h *CheckoutHandler) GoToStep(c *gin.Context) {
	coord, ok := h.coordinator(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid step index",
		})
		return
	}

	if err := coord.GoToStep(index); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Moved to step",
		"data": gin.H{
			"steps":        coord.Steps(),
			"current_step": coord.CurrentStep(),
		},
	})
}

// SubmitShipping handles POST /checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	coord, ok := h.coordinator(c)
	if !ok {
		return
	}

	var addr order.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := coord.CompleteShipping(addr); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping address saved",
		"data": gin.H{
			"steps":        coord.Steps(),
			"current_step": coord.CurrentStep(),
		},
	})
}

// SubmitPayment handles POST /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	coord, ok := h.coordinator(c)
	if !ok {
		return
	}

	var payment checkout.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := coord.CompletePayment(c.Request.Context(), payment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	coord, ok := h.coordinator(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    coord.Summary(),
	})
}

// RecalculateSummary handles POST /checkout/summary/recalculate
func (h *CheckoutHandler) RecalculateSummary(c *gin.Context) {
	coord, ok := h.coordinator(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary recalculated",
		"data":    coord.RecalculateSummary(),
	})
}

// GetPaymentMethods handles GET /checkout/payment-methods
func (h *CheckoutHandler) GetPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment methods retrieved successfully",
		"data":    checkout.PaymentMethods,
	})
}

func (h *CheckoutHandler) coordinator(c *gin.Context) (*checkout.Coordinator, bool) {
	h.mu.Lock()
	coord := h.current
	h.mu.Unlock()

	if coord == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active checkout",
		})
		return nil, false
	}
	return coord, true
}
