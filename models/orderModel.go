package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// statusSequence is the forward delivery lifecycle. Cancelled sits outside
// the sequence and is reachable from any non-terminal status.
var statusSequence = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	for _, st := range statusSequence {
		if s == st {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the immediate successor in the delivery lifecycle.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range statusSequence {
		if s == st && i+1 < len(statusSequence) {
			return statusSequence[i+1], true
		}
	}
	return "", false
}

// CanTransitionTo reports whether an order at status s may move to next:
// strictly the immediate successor, or cancelled while non-terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	successor, ok := s.Next()
	return ok && successor == next
}

type StatusUpdate struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// OrderItem is a snapshot of a menu item at order-creation time. Orders keep
// their own copy so later catalog edits cannot rewrite history.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	Order_id         string         `json:"order_id"`
	User_id          string         `json:"user_id"`
	Restaurant_id    string         `json:"restaurant_id"`
	Restaurant_name  string         `json:"restaurant_name"`
	Items            []OrderItem    `json:"items"`
	Total_price      float64        `json:"total_price"`
	Delivery_address string         `json:"delivery_address" validate:"required"`
	Created_at       time.Time      `json:"created_at"`
	Status_History   []StatusUpdate `json:"status_history"`
	Current_Status   StatusUpdate   `json:"current_status"`
}
