package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

func OrderRoutes(incomingRoutes *gin.Engine, ctrl *controllers.OrderController) {
	incomingRoutes.GET("/orders", ctrl.GetOrders())
	incomingRoutes.GET("/orders/:order_id", ctrl.GetOrder())
	incomingRoutes.POST("/orders", ctrl.PlaceOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", ctrl.UpdateOrderStatus())
}

// OrderStreamRoutes registers the websocket feed. It stays outside the
// authenticated group because browsers cannot set custom headers on
// websocket upgrades.
func OrderStreamRoutes(incomingRoutes *gin.Engine, ctrl *controllers.OrderController) {
	incomingRoutes.GET("/ws", ctrl.HandleWebSocket())
}
