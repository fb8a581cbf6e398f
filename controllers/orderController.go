package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-food-ordering/database"
	"go-food-ordering/models"
)

type OrderController struct {
	orders *database.OrderStore
	carts  *database.CartStore
}

func NewOrderController(orders *database.OrderStore, carts *database.CartStore) *OrderController {
	return &OrderController{orders: orders, carts: carts}
}

type checkoutRequest struct {
	Delivery_address string `json:"delivery_address" validate:"required"`
}

type statusUpdateRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// PlaceOrder runs the checkout workflow: the cart must be non-empty, carry a
// delivery address, and reference a single restaurant. On success the cart
// lines are snapshotted into an order and the cart is cleared; on any failure
// the cart is left untouched.
func (ctrl *OrderController) PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")

		var req checkoutRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please provide a delivery address"})
			return
		}

		cart := ctrl.carts.GetCart(uid)
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "your cart is empty"})
			return
		}

		restaurantId := cart.Items[0].Restaurant_id
		for _, line := range cart.Items {
			if line.Restaurant_id != restaurantId {
				c.JSON(http.StatusBadRequest, gin.H{"error": "please place separate orders for different restaurants"})
				return
			}
		}

		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			orderItems = append(orderItems, models.OrderItem{
				ID:       line.Item_id,
				Name:     line.Name,
				Price:    line.Price,
				Quantity: line.Quantity,
			})
		}

		order := ctrl.orders.CreateOrder(uid, restaurantId, cart.Items[0].Restaurant_name, orderItems, cart.Total, req.Delivery_address)
		ctrl.carts.ClearCart(uid)

		notifyClients(Message{Event: "newOrder", Payload: order})
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders returns the caller's orders, oldest first.
func (ctrl *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		c.JSON(http.StatusOK, ctrl.orders.GetOrdersByUserID(uid))
	}
}

func (ctrl *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		order, err := ctrl.orders.GetOrderByID(orderId)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if order.User_id != c.GetString("uid") && c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have access to this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus moves an order one step forward in its lifecycle, or
// cancels it. Cancelling is reserved for the order's owner or an admin.
func (ctrl *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")

		var req statusUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
			return
		}

		if req.Status == models.StatusCancelled {
			order, err := ctrl.orders.GetOrderByID(orderId)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			if order.User_id != c.GetString("uid") && c.GetString("role") != "admin" {
				c.JSON(http.StatusForbidden, gin.H{"error": "only the order owner can cancel"})
				return
			}
		}

		order, err := ctrl.orders.AdvanceStatus(orderId, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, database.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, database.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		notifyClients(Message{Event: "statusUpdate", Payload: order})
		c.JSON(http.StatusOK, order)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// HandleWebSocket upgrades the connection and keeps it registered until the
// client goes away. Connected clients receive order events as they happen.
func (ctrl *OrderController) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func notifyClients(message Message) {
	mu.Lock()
	defer mu.Unlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("error marshaling message:", err)
		return
	}
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}
