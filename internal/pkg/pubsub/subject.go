// internal/pkg/pubsub/subject.go
package pubsub

import "sync"

// Subject is a minimal push-based state container: every subscriber sees
// every emission in order, and a late subscriber is immediately called with
// the latest value. Handlers run synchronously on the emitting goroutine and
// must not call back into the same Subject.
type Subject[T any] struct {
	mu       sync.Mutex
	value    T
	hasValue bool
	nextID   int
	handlers []handler[T]
}

type handler[T any] struct {
	id int
	fn func(T)
}

// NewSubject creates a Subject seeded with an initial value
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial, hasValue: true}
}

// Value returns the latest emitted value
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Emit publishes a new value to all subscribers in subscription order
func (s *Subject[T]) Emit(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.hasValue = true
	for _, h := range s.handlers {
		h.fn(value)
	}
}

// Subscribe registers fn and, if a value exists, calls it immediately with
// the latest state. The returned function cancels the subscription.
func (s *Subject[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn})

	if s.hasValue {
		fn(s.value)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				break
			}
		}
	}
}
