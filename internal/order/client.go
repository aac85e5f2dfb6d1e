// internal/order/client.go
package order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/api"
)

// Client submits and reads orders through the remote API
type Client struct {
	api    *api.Client
	logger *logrus.Logger
}

// NewClient creates an order client
func NewClient(apiClient *api.Client, logger *logrus.Logger) *Client {
	return &Client{api: apiClient, logger: logger}
}

// Place submits an order and returns the created record
func (c *Client) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	var created Order
	if err := c.api.Post(ctx, "/orders", req, &created); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"order_id": created.ID,
		"total":    created.Total,
	}).Info("Order placed")

	return &created, nil
}

// List retrieves a page of the shopper's order history
func (c *Client) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var result Page
	path := fmt.Sprintf("/orders?page=%d&limit=%d", page, limit)
	if err := c.api.Get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &result, nil
}
