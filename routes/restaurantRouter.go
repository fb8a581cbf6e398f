package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

func RestaurantRoutes(incomingRoutes *gin.Engine, ctrl *controllers.RestaurantController) {
	incomingRoutes.GET("/restaurants", ctrl.GetRestaurants())
	incomingRoutes.GET("/restaurants/:restaurant_id", ctrl.GetRestaurant())
	incomingRoutes.GET("/restaurants/:restaurant_id/menu", ctrl.GetRestaurantMenu())
}
