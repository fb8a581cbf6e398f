package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

func CartRoutes(incomingRoutes *gin.Engine, ctrl *controllers.CartController) {
	incomingRoutes.GET("/cart", ctrl.GetCart())
	incomingRoutes.POST("/cart/items", ctrl.AddCartItem())
	incomingRoutes.PATCH("/cart/items/:item_id", ctrl.UpdateCartItem())
	incomingRoutes.DELETE("/cart/items/:item_id", ctrl.RemoveCartItem())
	incomingRoutes.DELETE("/cart", ctrl.ClearCart())
}
