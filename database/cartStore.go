package database

import (
	"sync"

	"go-food-ordering/models"
)

// CartStore keeps one cart per user id. Line order is insertion order.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]models.CartLine)}
}

// AddItem appends a line for the item, or merges into the existing line for
// the same item id by summing quantities. Non-positive quantities are
// rejected rather than silently clamped.
func (s *CartStore) AddItem(userID string, item models.MenuItem, restaurantName string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Item_id == item.Item_id {
			lines[i].Quantity += quantity
			return nil
		}
	}
	s.carts[userID] = append(lines, models.CartLine{
		MenuItem:        item,
		Restaurant_name: restaurantName,
		Quantity:        quantity,
	})
	return nil
}

// RemoveItem deletes the line for itemID. Absent lines are a no-op.
func (s *CartStore) RemoveItem(userID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Item_id == itemID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// UpdateItemQuantity replaces the line's quantity. A quantity of zero or
// below removes the line, same as RemoveItem.
func (s *CartStore) UpdateItemQuantity(userID, itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(userID, itemID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Item_id == itemID {
			lines[i].Quantity = quantity
			return
		}
	}
}

func (s *CartStore) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// GetCart returns a copy of the user's lines with freshly derived totals.
func (s *CartStore) GetCart(userID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.carts[userID]))
	copy(lines, s.carts[userID])
	return models.Cart{
		Items:      lines,
		CartTotals: models.ComputeTotals(lines),
	}
}
