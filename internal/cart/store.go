// internal/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/pkg/pubsub"
	"github.com/your-org/storefront-gateway/internal/storage"
)

// StorageKey is the fixed durable storage key for the cart collection
const StorageKey = "cart"

// Store maintains the shopper's cart lines as observable state synchronized
// to durable storage. Every mutation persists the full collection; a failed
// rehydrate starts the store empty.
type Store struct {
	mu      sync.Mutex
	items   []Item
	subject *pubsub.Subject[[]Item]
	sidebar *pubsub.Subject[bool]
	storage storage.Store
	hub     *notify.Hub
	logger  *logrus.Logger
	newID   func() string
}

// NewStore creates a cart store, rehydrating any persisted state
func NewStore(store storage.Store, hub *notify.Hub, logger *logrus.Logger) *Store {
	s := &Store{
		storage: store,
		hub:     hub,
		logger:  logger,
		newID:   func() string { return uuid.New().String() },
	}
	s.rehydrate()
	s.subject = pubsub.NewSubject(s.snapshot())
	s.sidebar = pubsub.NewSubject(false)
	return s
}

// Subscribe registers a cart observer. The handler sees the current lines
// immediately and every mutation afterwards, in order.
func (s *Store) Subscribe(fn func([]Item)) func() {
	return s.subject.Subscribe(fn)
}

// Items returns a copy of the current cart lines
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add adds a product to the cart. An existing line with the same
// (product, size, color) has its quantity incremented by one; otherwise a new
// line with quantity one is created.
func (s *Store) Add(item NewItem) {
	s.mu.Lock()

	found := false
	for i := range s.items {
		if s.items[i].variantKey() == item.variantKey() {
			s.items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		s.items = append(s.items, Item{
			ID:        s.newID(),
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  1,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		})
	}

	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
	if found {
		s.hub.Success(fmt.Sprintf("%s quantity updated in cart!", item.Name))
	} else {
		s.hub.Success(fmt.Sprintf("%s added to cart!", item.Name))
	}
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of one.
// Removing a line is an explicit Remove, never a quantity of zero.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
}

// Remove deletes a line from the cart
func (s *Store) Remove(id string) {
	s.mu.Lock()
	var removed *Item
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			removed = &item
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
	if removed != nil {
		s.hub.Info(fmt.Sprintf("%s removed from cart", removed.Name))
	}
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	count := len(s.items)
	s.items = nil
	s.persistLocked()
	items := s.snapshot()
	s.mu.Unlock()

	s.subject.Emit(items)
	if count > 0 {
		s.hub.Warning(fmt.Sprintf("Cleared %d %s from cart", count, pluralize(count)))
	}
}

// Total returns the sum of price times quantity over all lines
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemsCount returns the sum of quantities, not the line count
func (s *Store) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// ToggleSidebar flips the cart sidebar signal
func (s *Store) ToggleSidebar() {
	s.sidebar.Emit(!s.sidebar.Value())
}

// OpenSidebar opens the cart sidebar signal
func (s *Store) OpenSidebar() {
	s.sidebar.Emit(true)
}

// CloseSidebar closes the cart sidebar signal
func (s *Store) CloseSidebar() {
	s.sidebar.Emit(false)
}

// SidebarOpen reports the sidebar signal state
func (s *Store) SidebarOpen() bool {
	return s.sidebar.Value()
}

// SubscribeSidebar registers a sidebar signal observer
func (s *Store) SubscribeSidebar(fn func(bool)) func() {
	return s.sidebar.Subscribe(fn)
}

func (s *Store) snapshot() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// persistLocked serializes the full collection to durable storage. Failures
// are logged and swallowed; the in-memory state stays authoritative.
func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode cart")
		return
	}
	if err := s.storage.Set(context.Background(), StorageKey, string(raw)); err != nil {
		s.logger.WithError(err).Warn("Failed to persist cart")
	}
}

func (s *Store) rehydrate() {
	raw, err := s.storage.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.WithError(err).Warn("Failed to load cart from storage")
		}
		return
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.WithError(err).Warn("Corrupt cart state, starting empty")
		return
	}
	s.items = items
}

func pluralize(count int) string {
	if count == 1 {
		return "item"
	}
	return "items"
}
