// internal/wishlist/store.go
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/cart"
	"github.com/your-org/storefront-gateway/internal/catalog"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/pkg/pubsub"
	"github.com/your-org/storefront-gateway/internal/storage"
)

// StorageKey is the fixed durable storage key for the wishlist collection
const StorageKey = "ecom_wishlist"

// Store maintains the shopper's wishlist. Entries are keyed purely by product
// id with toggle semantics: at most one entry per product.
type Store struct {
	mu      sync.Mutex
	items   []Item
	subject *pubsub.Subject[[]Item]
	storage storage.Store
	cart    *cart.Store
	hub     *notify.Hub
	logger  *logrus.Logger
	newID   func() string
	now     func() time.Time
}

// NewStore creates a wishlist store, rehydrating any persisted state
func NewStore(store storage.Store, cartStore *cart.Store, hub *notify.Hub, logger *logrus.Logger) *Store {
	s := &Store{
		storage: store,
		cart:    cartStore,
		hub:     hub,
		logger:  logger,
		newID:   func() string { return uuid.New().String() },
		now:     time.Now,
	}
	s.rehydrate()
	s.subject = pubsub.NewSubject(s.snapshot())
	return s
}

// Subscribe registers a wishlist observer
func (s *Store) Subscribe(fn func([]Item)) func() {
	return s.subject.Subscribe(fn)
}

// Items returns a copy of the current wishlist entries
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Count returns the number of wishlist entries
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Contains reports whether a product is in the wishlist
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Toggle adds the product when absent and removes it when present
func (s *Store) Toggle(product catalog.Product) {
	if s.Contains(product.ID) {
		s.Remove(product.ID)
	} else {
		s.Add(product)
	}
}

// Add adds a product to the wishlist. Adding a product already present is a
// no-op, keeping at most one entry per product id.
func (s *Store) Add(product catalog.Product) {
	s.mu.Lock()
	if s.indexOf(product.ID) >= 0 {
		s.mu.Unlock()
		return
	}

	s.items = append(s.items, Item{
		ID:            s.newID(),
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Image:         product.Image,
		Rating:        product.Rating,
		ReviewCount:   product.ReviewCount,
		Category:      product.Category,
		Brand:         product.Brand,
		IsNew:         product.IsNew,
		Discount:      product.Discount,
		DateAdded:     s.now().UTC(),
		InStock:       true,
	})
	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
	s.hub.Success(fmt.Sprintf("%s added to wishlist!", product.Name))
}

// Remove deletes a product's entry from the wishlist
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
	s.hub.Info(fmt.Sprintf("%s removed from wishlist", removed.Name))
}

// Clear empties the wishlist
func (s *Store) Clear() {
	s.mu.Lock()
	count := len(s.items)
	s.items = nil
	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
	if count > 0 {
		noun := "items"
		if count == 1 {
			noun = "item"
		}
		s.hub.Warning(fmt.Sprintf("Cleared %d %s from wishlist", count, noun))
	}
}

// MoveToCart adds a wishlist entry to the cart and removes it from the
// wishlist
func (s *Store) MoveToCart(productID string) error {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("product %s not in wishlist", productID)
	}
	item := s.items[i]
	s.mu.Unlock()

	s.cart.Add(cart.NewItem{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Image:     item.Image,
	})
	s.Remove(productID)
	return nil
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode wishlist")
		return
	}
	if err := s.storage.Set(context.Background(), StorageKey, string(raw)); err != nil {
		s.logger.WithError(err).Warn("Failed to persist wishlist")
	}
}

func (s *Store) rehydrate() {
	raw, err := s.storage.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.WithError(err).Warn("Failed to load wishlist from storage")
		}
		return
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.WithError(err).Warn("Corrupt wishlist state, starting empty")
		return
	}
	s.items = items
}
