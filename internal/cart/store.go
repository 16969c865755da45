package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns one cart per session. Cart mutation is confined to a single
// session; there is no cross-device merge.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID]*Cart)}
}

// Get returns the cart for the session key, creating it on first use.
func (s *Store) Get(key uuid.UUID) *Cart {
	s.mu.RLock()
	c, ok := s.carts[key]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[key]; ok {
		return c
	}
	c = New()
	s.carts[key] = c
	return c
}
