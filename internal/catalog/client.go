// internal/catalog/client.go
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/api"
)

// Client reads the product catalog from the remote API
type Client struct {
	api    *api.Client
	logger *logrus.Logger
}

// NewClient creates a catalog client
func NewClient(apiClient *api.Client, logger *logrus.Logger) *Client {
	return &Client{api: apiClient, logger: logger}
}

// List retrieves a page of products
func (c *Client) List(ctx context.Context, query ListQuery) (*Page, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	values := url.Values{}
	values.Set("page", fmt.Sprintf("%d", query.Page))
	values.Set("limit", fmt.Sprintf("%d", query.Limit))
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	var page Page
	if err := c.api.Get(ctx, "/products?"+values.Encode(), &page); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &page, nil
}

// Get retrieves a single product by id
func (c *Client) Get(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.api.Get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// Searcher serializes search-as-you-type requests. Each search is stamped
// with a monotonically increasing sequence; a response arriving after a newer
// search was issued is discarded, so callers never observe a stale result
// overwriting a fresh one.
type Searcher struct {
	client *Client

	mu  sync.Mutex
	seq uint64
}

// NewSearcher creates a searcher over a catalog client
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client}
}

// Search runs a catalog search. It returns (nil, nil) when the result was
// superseded by a later search before it arrived.
func (s *Searcher) Search(ctx context.Context, term string) (*Page, error) {
	s.mu.Lock()
	s.seq++
	issued := s.seq
	s.mu.Unlock()

	page, err := s.client.List(ctx, ListQuery{Search: term})

	s.mu.Lock()
	stale := issued != s.seq
	s.mu.Unlock()

	if stale {
		s.client.logger.WithField("term", term).Debug("Discarding superseded search result")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}
