package database

import (
	"fmt"
	"sync"
	"time"

	"go-food-ordering/models"
)

// OrderStore is the append-only order ledger. Orders keep insertion order;
// ids are sequential ("o1", "o2", ...) and allocated under the lock so
// concurrent checkouts cannot collide.
type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	byID   map[string]int
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byID: make(map[string]int)}
}

// insert appends an order as-is. Used for seeding pre-built histories.
func (s *OrderStore) insert(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[order.Order_id] = len(s.orders)
	s.orders = append(s.orders, order)
}

// CreateOrder appends a new order with a fresh id and a single pending
// history entry stamped with the creation time. Preconditions (non-empty
// items, non-empty address, single restaurant) are enforced at checkout.
func (s *OrderStore) CreateOrder(userID, restaurantID, restaurantName string, items []models.OrderItem, totalPrice float64, deliveryAddress string) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	created := models.StatusUpdate{Status: models.StatusPending, Timestamp: now}
	order := models.Order{
		Order_id:         fmt.Sprintf("o%d", len(s.orders)+1),
		User_id:          userID,
		Restaurant_id:    restaurantID,
		Restaurant_name:  restaurantName,
		Items:            items,
		Total_price:      totalPrice,
		Delivery_address: deliveryAddress,
		Created_at:       now,
		Status_History:   []models.StatusUpdate{created},
		Current_Status:   created,
	}
	s.byID[order.Order_id] = len(s.orders)
	s.orders = append(s.orders, order)
	return order
}

func (s *OrderStore) GetOrderByID(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return s.orders[i], nil
}

// GetOrdersByUserID returns the user's orders oldest first. A user with no
// orders gets an empty slice, not an error.
func (s *OrderStore) GetOrdersByUserID(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Order{}
	for _, order := range s.orders {
		if order.User_id == userID {
			out = append(out, order)
		}
	}
	return out
}

// AdvanceStatus appends {next, now} to the order's history. Only the
// immediate successor in the lifecycle is accepted, except cancelled, which
// is reachable from any non-terminal status.
func (s *OrderStore) AdvanceStatus(orderID string, next models.OrderStatus) (models.Order, error) {
	if !next.Valid() {
		return models.Order{}, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[orderID]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	order := s.orders[i]
	if !order.Current_Status.Status.CanTransitionTo(next) {
		return models.Order{}, ErrInvalidTransition
	}
	update := models.StatusUpdate{Status: next, Timestamp: time.Now()}
	order.Status_History = append(order.Status_History, update)
	order.Current_Status = update
	s.orders[i] = order
	return order, nil
}
