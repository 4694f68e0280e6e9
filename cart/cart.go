// Package cart is the in-memory, session-lifetime cart store. Items are
// unique by (product id, size); totals are derived from the live item list on
// every read and never cached.
package cart

import (
	"sync"

	"roastline/models"
	"roastline/session"
)

// Store keeps one item list per browser session id.
type Store struct {
	mu     sync.RWMutex
	items  map[string][]models.CartItem
	maxQty int
}

// NewStore builds the cart store. maxQty bounds the programmatic quantity
// path (the drawer input has its own, handler-enforced bound). The store
// subscribes to session mutations so a logout drops that session's cart.
func NewStore(maxQty int, bus *session.Bus) *Store {
	s := &Store{
		items:  make(map[string][]models.CartItem),
		maxQty: maxQty,
	}
	if bus != nil {
		bus.Subscribe(func(ev session.Event) {
			if ev.Type == session.AuthCleared {
				s.Clear(ev.SID)
			}
		})
	}
	return s
}

func (s *Store) find(sid, id, size string) int {
	for i, item := range s.items[sid] {
		if item.ID == id && item.Size == size {
			return i
		}
	}
	return -1
}

// Add merges quantity into an existing (id, size) line or appends a new one.
func (s *Store) Add(sid string, item models.CartItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(sid, item.ID, item.Size); i >= 0 {
		s.items[sid][i].Quantity += qty
		if s.items[sid][i].Quantity > s.maxQty {
			s.items[sid][i].Quantity = s.maxQty
		}
		return
	}
	if qty > s.maxQty {
		qty = s.maxQty
	}
	item.Quantity = qty
	s.items[sid] = append(s.items[sid], item)
}

// Remove deletes the (id, size) line.
func (s *Store) Remove(sid, id, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(sid, id, size); i >= 0 {
		s.items[sid] = append(s.items[sid][:i], s.items[sid][i+1:]...)
	}
}

// UpdateQuantity sets the line quantity, clamped to [1, maxQty]. A requested
// value below 1 removes the line instead.
func (s *Store) UpdateQuantity(sid, id, size string, qty int) {
	if qty < 1 {
		s.Remove(sid, id, size)
		return
	}
	if qty > s.maxQty {
		qty = s.maxQty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(sid, id, size); i >= 0 {
		s.items[sid][i].Quantity = qty
	}
}

// SetQuantity sets the line quantity exactly as given. The drawer handler
// range-checks before calling; the store does not clamp here.
func (s *Store) SetQuantity(sid, id, size string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(sid, id, size); i >= 0 {
		s.items[sid][i].Quantity = qty
	}
}

// Items returns a copy of the session's cart lines.
func (s *Store) Items(sid string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, len(s.items[sid]))
	copy(items, s.items[sid])
	return items
}

// Total recomputes the cart total from the current lines.
func (s *Store) Total(sid string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, item := range s.items[sid] {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count recomputes the number of units in the cart.
func (s *Store) Count(sid string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.items[sid] {
		count += item.Quantity
	}
	return count
}

// Clear empties the session's cart.
func (s *Store) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sid)
}
