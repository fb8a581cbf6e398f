package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-food-ordering/database"
)

type CartController struct {
	carts   *database.CartStore
	catalog *database.CatalogStore
}

func NewCartController(carts *database.CartStore, catalog *database.CatalogStore) *CartController {
	return &CartController{carts: carts, catalog: catalog}
}

type addCartItemRequest struct {
	Menu_item_id string `json:"menu_item_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (ctrl *CartController) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		c.JSON(http.StatusOK, ctrl.carts.GetCart(uid))
	}
}

// AddCartItem resolves the menu item from the catalog, snapshots the owning
// restaurant's name onto the line, and merges with any existing line for the
// same item.
func (ctrl *CartController) AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")

		var req addCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		item, err := ctrl.catalog.GetMenuItemByID(req.Menu_item_id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		restaurant, err := ctrl.catalog.GetRestaurantByID(item.Restaurant_id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}

		if err := ctrl.carts.AddItem(uid, item, restaurant.Name, req.Quantity); err != nil {
			if errors.Is(err, database.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "item was not added to the cart"})
			return
		}
		c.JSON(http.StatusOK, ctrl.carts.GetCart(uid))
	}
}

func (ctrl *CartController) UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		itemId := c.Param("item_id")

		var req updateCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctrl.carts.UpdateItemQuantity(uid, itemId, req.Quantity)
		c.JSON(http.StatusOK, ctrl.carts.GetCart(uid))
	}
}

func (ctrl *CartController) RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		ctrl.carts.RemoveItem(uid, c.Param("item_id"))
		c.JSON(http.StatusOK, ctrl.carts.GetCart(uid))
	}
}

func (ctrl *CartController) ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		ctrl.carts.ClearCart(uid)
		c.JSON(http.StatusOK, ctrl.carts.GetCart(uid))
	}
}
