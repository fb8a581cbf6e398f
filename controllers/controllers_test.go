package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-food-ordering/controllers"
	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
	"go-food-ordering/routes"
)

type testServer struct {
	router *gin.Engine
	carts  *database.CartStore
	orders *database.OrderStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	catalog := database.NewCatalogStore(database.SeedRestaurants(), database.SeedMenuItems())
	carts := database.NewCartStore()
	orders := database.NewOrderStore()
	users := database.NewUserStore()
	database.SeedUsers(users)

	userController := controllers.NewUserController(users)
	restaurantController := controllers.NewRestaurantController(catalog)
	cartController := controllers.NewCartController(carts, catalog)
	orderController := controllers.NewOrderController(orders, carts)

	router := gin.New()
	routes.UserRoutes(router, userController)
	routes.RestaurantRoutes(router, restaurantController)
	router.Use(middleware.Authentication())
	routes.ProfileRoutes(router, userController)
	routes.CartRoutes(router, cartController)
	routes.OrderRoutes(router, orderController)

	return &testServer{router: router, carts: carts, orders: orders}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("token", token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func customerToken(t *testing.T, uid string) string {
	t.Helper()
	token, _, err := helpers.GenerateAllTokens(uid+"@example.com", "tester", uid, "customer")
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestSignUpAndLogin(t *testing.T) {
	ts := newTestServer(t)

	signup := ts.do(t, http.MethodPost, "/users/signup", "", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, signup.Code, signup.Body.String())

	var created models.User
	decode(t, signup, &created)
	assert.NotEmpty(t, created.User_id)
	assert.Equal(t, "customer", created.Role)
	require.NotNil(t, created.Token)

	login := ts.do(t, http.MethodPost, "/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	badLogin := ts.do(t, http.MethodPost, "/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, badLogin.Code)
}

func TestSignUpValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"name": "Alice", "password": "hunter22"}},
		{"malformed email", gin.H{"name": "Alice", "email": "not-an-email", "password": "hunter22"}},
		{"short password", gin.H{"name": "Alice", "email": "a@example.com", "password": "abc"}},
		{"short name", gin.H{"name": "A", "email": "a@example.com", "password": "hunter22"}},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/users/signup", "", testCase.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDuplicateSignUpRejected(t *testing.T) {
	ts := newTestServer(t)

	body := gin.H{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/users/signup", "", body).Code)
	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPost, "/users/signup", "", body).Code)
}

func TestRestaurantListing(t *testing.T) {
	ts := newTestServer(t)

	type listResponse struct {
		Data []models.Restaurant `json:"data"`
	}

	var all listResponse
	w := ts.do(t, http.MethodGet, "/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &all)
	require.Len(t, all.Data, 5)
	// Default sort: rating, highest first.
	assert.Equal(t, "Sushi Express", all.Data[0].Name)

	var italian listResponse
	w = ts.do(t, http.MethodGet, "/restaurants?cuisine=Italian", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &italian)
	require.Len(t, italian.Data, 1)
	assert.Equal(t, "Pizza Heaven", italian.Data[0].Name)

	var searched listResponse
	w = ts.do(t, http.MethodGet, "/restaurants?q=taco", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &searched)
	require.Len(t, searched.Data, 1)
	assert.Equal(t, "Taco Town", searched.Data[0].Name)

	var fastest listResponse
	w = ts.do(t, http.MethodGet, "/restaurants?sort=deliveryTime", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &fastest)
	require.Len(t, fastest.Data, 5)
	assert.Equal(t, "Taco Town", fastest.Data[0].Name)
}

func TestRestaurantDetailAndMenu(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/restaurants/r1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var restaurant models.Restaurant
	decode(t, w, &restaurant)
	assert.Equal(t, "Burger Palace", restaurant.Name)

	w = ts.do(t, http.MethodGet, "/restaurants/r1/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menu []models.MenuItem
	decode(t, w, &menu)
	assert.Len(t, menu, 4)

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/restaurants/r999", "", nil).Code)
}

func TestCartEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := customerToken(t, "u1")

	w := ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp3", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	decode(t, w, &cart)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "Burger Palace", cart.Items[0].Restaurant_name)
	assert.InDelta(t, 22.97, cart.Subtotal, 1e-9)
	assert.InDelta(t, 27.6679, cart.Total, 1e-9)

	// Unknown catalog item.
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "zz9", "quantity": 1}).Code)
	// Non-positive quantity.
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp1", "quantity": 0}).Code)

	// Setting quantity to zero removes the line.
	w = ts.do(t, http.MethodPatch, "/cart/items/bp1", token, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "bp3", cart.Items[0].Item_id)

	w = ts.do(t, http.MethodDelete, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCartRequiresAuthentication(t *testing.T) {
	ts := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/cart", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/cart", "garbage-token", nil).Code)
}

func TestCheckoutFlow(t *testing.T) {
	ts := newTestServer(t)
	token := customerToken(t, "u1")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp1", "quantity": 2}).Code)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp3", "quantity": 1}).Code)

	w := ts.do(t, http.MethodPost, "/orders", token, gin.H{"delivery_address": "123 Main St, Apt 4B"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	decode(t, w, &order)
	assert.Equal(t, "o1", order.Order_id)
	assert.Equal(t, "u1", order.User_id)
	assert.Equal(t, "r1", order.Restaurant_id)
	assert.Equal(t, "Burger Palace", order.Restaurant_name)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 27.6679, order.Total_price, 1e-9)
	require.Len(t, order.Status_History, 1)
	assert.Equal(t, models.StatusPending, order.Current_Status.Status)

	// Cart is destroyed by a successful checkout.
	var cart models.Cart
	cartResp := ts.do(t, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, cartResp.Code)
	decode(t, cartResp, &cart)
	assert.Empty(t, cart.Items)

	// The order shows up under the caller's orders.
	listResp := ts.do(t, http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, listResp.Code)
	var orders []models.Order
	decode(t, listResp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].Order_id)
}

func TestCheckoutValidation(t *testing.T) {
	ts := newTestServer(t)
	token := customerToken(t, "u1")

	// Empty cart.
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/orders", token, gin.H{"delivery_address": "123 Main St"}).Code)

	// Missing address.
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp1", "quantity": 1}).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/orders", token, gin.H{"delivery_address": ""}).Code)

	// No token.
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/orders", "", gin.H{"delivery_address": "123 Main St"}).Code)
}

func TestCheckoutRejectsMultipleRestaurants(t *testing.T) {
	ts := newTestServer(t)
	token := customerToken(t, "u1")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "bp1", "quantity": 1}).Code)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"menu_item_id": "ph1", "quantity": 1}).Code)

	w := ts.do(t, http.MethodPost, "/orders", token, gin.H{"delivery_address": "123 Main St"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No order was created and the cart is untouched.
	var orders []models.Order
	listResp := ts.do(t, http.MethodGet, "/orders", token, nil)
	decode(t, listResp, &orders)
	assert.Empty(t, orders)

	var cart models.Cart
	cartResp := ts.do(t, http.MethodGet, "/cart", token, nil)
	decode(t, cartResp, &cart)
	assert.Len(t, cart.Items, 2)
}

func TestOrderOwnership(t *testing.T) {
	ts := newTestServer(t)
	owner := customerToken(t, "u1")
	stranger := customerToken(t, "u2")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", owner, gin.H{"menu_item_id": "bp1", "quantity": 1}).Code)
	checkout := ts.do(t, http.MethodPost, "/orders", owner, gin.H{"delivery_address": "123 Main St"})
	require.Equal(t, http.StatusCreated, checkout.Code)

	var order models.Order
	decode(t, checkout, &order)
	path := fmt.Sprintf("/orders/%s", order.Order_id)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, path, owner, nil).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodGet, path, stranger, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/orders/o999", owner, nil).Code)

	// A user with zero orders gets an empty list.
	var empty []models.Order
	listResp := ts.do(t, http.MethodGet, "/orders", stranger, nil)
	require.Equal(t, http.StatusOK, listResp.Code)
	decode(t, listResp, &empty)
	assert.Empty(t, empty)
}

func TestOrderStatusEndpoint(t *testing.T) {
	ts := newTestServer(t)
	owner := customerToken(t, "u1")
	stranger := customerToken(t, "u2")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/cart/items", owner, gin.H{"menu_item_id": "bp1", "quantity": 1}).Code)
	checkout := ts.do(t, http.MethodPost, "/orders", owner, gin.H{"delivery_address": "123 Main St"})
	require.Equal(t, http.StatusCreated, checkout.Code)

	var order models.Order
	decode(t, checkout, &order)
	path := fmt.Sprintf("/orders/%s/status", order.Order_id)

	// Forward one step.
	w := ts.do(t, http.MethodPatch, path, owner, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &order)
	assert.Equal(t, models.StatusConfirmed, order.Current_Status.Status)
	assert.Len(t, order.Status_History, 2)

	// Skipping ahead conflicts.
	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPatch, path, owner, gin.H{"status": "delivered"}).Code)
	// Unknown status.
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPatch, path, owner, gin.H{"status": "returned"}).Code)
	// Only the owner may cancel.
	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodPatch, path, stranger, gin.H{"status": "cancelled"}).Code)

	w = ts.do(t, http.MethodPatch, path, owner, gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &order)
	assert.Equal(t, models.StatusCancelled, order.Current_Status.Status)

	// Cancelled is terminal.
	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPatch, path, owner, gin.H{"status": "preparing"}).Code)
}

func TestProfileEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := customerToken(t, "123456") // seeded demo user

	w := ts.do(t, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	decode(t, w, &user)
	assert.Equal(t, "123456", user.User_id)
	assert.Nil(t, user.Password)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/users/logout", token, nil).Code)
}
