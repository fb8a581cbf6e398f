package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-food-ordering/controllers"
	"go-food-ordering/database"
	middleware "go-food-ordering/middleware"
	routes "go-food-ordering/routes"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	catalog := database.NewCatalogStore(database.SeedRestaurants(), database.SeedMenuItems())
	carts := database.NewCartStore()
	orders := database.NewOrderStore()
	database.SeedOrders(orders)
	users := database.NewUserStore()
	database.SeedUsers(users)

	userController := controllers.NewUserController(users)
	restaurantController := controllers.NewRestaurantController(catalog)
	cartController := controllers.NewCartController(carts, catalog)
	orderController := controllers.NewOrderController(orders, carts)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Enable CORS for the browser storefront
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "page not found"})
	})

	// Public routes
	routes.UserRoutes(router, userController)
	routes.RestaurantRoutes(router, restaurantController)
	routes.OrderStreamRoutes(router, orderController)

	// Everything past this point requires a valid token
	router.Use(middleware.Authentication())
	routes.ProfileRoutes(router, userController)
	routes.CartRoutes(router, cartController)
	routes.OrderRoutes(router, orderController)

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
