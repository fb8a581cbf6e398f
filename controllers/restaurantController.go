package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-food-ordering/database"
)

type RestaurantController struct {
	catalog *database.CatalogStore
}

func NewRestaurantController(catalog *database.CatalogStore) *RestaurantController {
	return &RestaurantController{catalog: catalog}
}

// GetRestaurants lists the catalog with optional ?cuisine= filter, ?q= text
// search over name and cuisine, and ?sort= one of rating (default, highest
// first), deliveryTime (fastest first) or name.
func (ctrl *RestaurantController) GetRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurants := ctrl.catalog.ListRestaurants()

		if cuisine := c.Query("cuisine"); cuisine != "" {
			filtered := restaurants[:0]
			for _, r := range restaurants {
				if r.Cuisine == cuisine {
					filtered = append(filtered, r)
				}
			}
			restaurants = filtered
		}
		if query := strings.ToLower(c.Query("q")); query != "" {
			filtered := restaurants[:0]
			for _, r := range restaurants {
				if strings.Contains(strings.ToLower(r.Name), query) ||
					strings.Contains(strings.ToLower(r.Cuisine), query) {
					filtered = append(filtered, r)
				}
			}
			restaurants = filtered
		}

		switch c.DefaultQuery("sort", "rating") {
		case "deliveryTime":
			sort.SliceStable(restaurants, func(i, j int) bool {
				return leadingMinutes(restaurants[i].Delivery_Time) < leadingMinutes(restaurants[j].Delivery_Time)
			})
		case "name":
			sort.SliceStable(restaurants, func(i, j int) bool {
				return restaurants[i].Name < restaurants[j].Name
			})
		default:
			sort.SliceStable(restaurants, func(i, j int) bool {
				return restaurants[i].Rating > restaurants[j].Rating
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "restaurants fetched successfully",
			"data":    restaurants,
		})
	}
}

func (ctrl *RestaurantController) GetRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantId := c.Param("restaurant_id")
		restaurant, err := ctrl.catalog.GetRestaurantByID(restaurantId)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

func (ctrl *RestaurantController) GetRestaurantMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantId := c.Param("restaurant_id")
		if _, err := ctrl.catalog.GetRestaurantByID(restaurantId); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusOK, ctrl.catalog.GetMenuItemsByRestaurantID(restaurantId))
	}
}

// leadingMinutes parses the first number out of a "25-35 min" style estimate.
func leadingMinutes(deliveryTime string) int {
	digits := ""
	for _, r := range deliveryTime {
		if r < '0' || r > '9' {
			break
		}
		digits += string(r)
	}
	minutes, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return minutes
}
