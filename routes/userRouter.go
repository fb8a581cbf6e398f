package routes

import (
	"github.com/gin-gonic/gin"

	"go-food-ordering/controllers"
)

// UserRoutes registers the public auth endpoints.
func UserRoutes(incomingRoutes *gin.Engine, ctrl *controllers.UserController) {
	incomingRoutes.POST("/users/signup", ctrl.SignUp())
	incomingRoutes.POST("/users/login", ctrl.Login())
}

// ProfileRoutes registers endpoints that require authentication.
func ProfileRoutes(incomingRoutes *gin.Engine, ctrl *controllers.UserController) {
	incomingRoutes.POST("/users/logout", ctrl.Logout())
	incomingRoutes.GET("/users/me", ctrl.GetProfile())
}
