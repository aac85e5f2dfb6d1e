// internal/checkout/coordinator.go
package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/cart"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/order"
)

const (
	stepShipping = 0
	stepPayment  = 1
)

// Coordinator sequences the two-phase checkout: shipping address capture,
// then payment, then order placement. One coordinator serves one checkout;
// after completion it is terminal and a new checkout needs a fresh instance.
//
// The summary is a snapshot taken at construction. Cart mutations during
// checkout do not move the quoted prices; call RecalculateSummary to requote.
type Coordinator struct {
	mu        sync.Mutex
	config    *config.Config
	cart      *cart.Store
	orders    *order.Client
	forms     *FormValidator
	hub       *notify.Hub
	logger    *logrus.Logger
	steps     []Step
	current   int
	completed bool
	address   *order.Address
	summary   Summary
}

// NewCoordinator starts a checkout over the current cart contents
func NewCoordinator(cfg *config.Config, cartStore *cart.Store, orders *order.Client, hub *notify.Hub, logger *logrus.Logger) *Coordinator {
	c := &Coordinator{
		config: cfg,
		cart:   cartStore,
		orders: orders,
		forms:  NewFormValidator(),
		hub:    hub,
		logger: logger,
		steps: []Step{
			{
				ID:          "shipping",
				Title:       "Shipping Address",
				Description: "Enter your delivery details",
				Active:      true,
			},
			{
				ID:          "payment",
				Title:       "Payment",
				Description: "Choose payment method",
				Disabled:    true,
			},
		},
	}
	c.summary = c.computeSummary()
	return c
}

// Steps returns a copy of the current step states
func (c *Coordinator) Steps() []Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	steps := make([]Step, len(c.steps))
	copy(steps, c.steps)
	return steps
}

// CurrentStep returns the active step index
func (c *Coordinator) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Completed reports whether the checkout has finished
func (c *Coordinator) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// Summary returns the pricing snapshot
func (c *Coordinator) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// GoToStep jumps to a step by index. A jump is only allowed backwards or to
// a step that has already completed, so direct navigation can never skip
// ahead into an incomplete step.
func (c *Coordinator) GoToStep(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.steps) {
		return fmt.Errorf("step %d out of range", index)
	}
	if index >= c.current && !c.steps[index].Completed {
		return fmt.Errorf("step %q is not reachable yet", c.steps[index].ID)
	}

	c.current = index
	c.updateActiveLocked()
	return nil
}

// CompleteShipping validates and captures the shipping address, completing
// the shipping step and unlocking payment
func (c *Coordinator) CompleteShipping(addr order.Address) error {
	if err := c.forms.ValidateAddress(addr); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return fmt.Errorf("checkout already completed")
	}

	captured := addr
	c.address = &captured
	c.steps[stepShipping].Completed = true
	c.steps[stepPayment].Disabled = false
	c.current = stepPayment
	c.updateActiveLocked()

	c.logger.WithField("city", addr.City).Debug("Shipping step completed")
	return nil
}

// CompletePayment validates the payment form, places the order and clears
// the cart. Success is terminal for this coordinator.
func (c *Coordinator) CompletePayment(ctx context.Context, payment Payment) (*order.Order, error) {
	if err := c.forms.ValidatePayment(payment); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.completed {
		c.mu.Unlock()
		return nil, fmt.Errorf("checkout already completed")
	}
	if !c.steps[stepShipping].Completed || c.current != stepPayment {
		c.mu.Unlock()
		return nil, fmt.Errorf("shipping step must complete before payment")
	}
	req := order.PlaceRequest{
		Items:           c.cart.Items(),
		ShippingAddress: *c.address,
		PaymentMethod:   payment.Method,
		Subtotal:        c.summary.Subtotal,
		Shipping:        c.summary.Shipping,
		Tax:             c.summary.Tax,
		Total:           c.summary.Total,
	}
	c.mu.Unlock()

	placed, err := c.orders.Place(ctx, req)
	if err != nil {
		// Payment step stays active; the shopper can retry
		return nil, err
	}

	c.mu.Lock()
	c.steps[stepPayment].Completed = true
	c.completed = true
	c.mu.Unlock()

	// The order is placed; the cart's job is done
	c.cart.Clear()
	c.hub.Success(fmt.Sprintf("Order %s placed successfully!", placed.ID))

	return placed, nil
}

// RecalculateSummary requotes the summary from the live cart state
func (c *Coordinator) RecalculateSummary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = c.computeSummary()
	return c.summary
}

func (c *Coordinator) computeSummary() Summary {
	subtotal := c.cart.Total()
	shipping := c.config.Checkout.ShippingFlatRate
	tax := subtotal * c.config.Checkout.TaxRate

	return Summary{
		ItemsCount: c.cart.ItemsCount(),
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		Total:      subtotal + shipping + tax,
	}
}

func (c *Coordinator) updateActiveLocked() {
	for i := range c.steps {
		c.steps[i].Active = i == c.current
	}
}
