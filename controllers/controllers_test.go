package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-api/config"
	"food-delivery-api/logger"
	"food-delivery-api/models"
	"food-delivery-api/services"
	"food-delivery-api/storage"
)

type env struct {
	router *gin.Engine
	orders storage.OrderStore
}

// newEnv wires the full handler stack over in-memory stores.
func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	restaurants := storage.NewMemoryRestaurantStore()
	menuItems := storage.NewMemoryMenuItemStore()
	orders := storage.NewMemoryOrderStore()
	log := logger.New("test")

	catalogService := services.NewCatalogService(restaurants, menuItems)
	orderService := services.NewOrderService(orders)
	seedService := services.NewSeedService(restaurants, menuItems)

	router := gin.New()
	cfg := &config.Config{DatabaseName: "food_delivery"}

	health := NewHealthController(nil, cfg)
	router.GET("/", health.Root())
	router.GET("/test", health.TestDatabase())
	router.POST("/seed", NewSeedController(seedService, log).SeedData())
	router.GET("/schema", NewSchemaController().GetSchema())

	restaurantController := NewRestaurantController(catalogService)
	router.GET("/restaurants", restaurantController.GetRestaurants())
	router.GET("/restaurants/:restaurant_id", restaurantController.GetRestaurant())
	router.GET("/restaurants/:restaurant_id/menu", restaurantController.GetRestaurantMenu())

	orderController := NewOrderController(orderService, log)
	router.POST("/orders", orderController.CreateOrder())
	router.GET("/orders", orderController.GetOrders())
	router.GET("/orders/:order_id", orderController.GetOrder())

	return &env{router: router, orders: orders}
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
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
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRootEndpoint(t *testing.T) {
	e := newEnv(t)

	recorder := e.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Food Delivery API is running", decodeBody(t, recorder)["message"])
}

func TestSchemaEndpoint(t *testing.T) {
	e := newEnv(t)

	recorder := e.do(t, http.MethodGet, "/schema", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Collections []string `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"user", "product", "restaurant", "menuitem", "order"}, body.Collections)
}

func TestDiagnosticsEndpoint_NoDatabase(t *testing.T) {
	e := newEnv(t)

	recorder := e.do(t, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "❌ Not Available", body["database"])
	assert.Equal(t, "Not Connected", body["connection_status"])
}

func TestSeedThenListFlow(t *testing.T) {
	e := newEnv(t)

	recorder := e.do(t, http.MethodPost, "/seed", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var seedBody struct {
		Seeded struct {
			Restaurants int `json:"restaurants"`
			MenuItems   int `json:"menuitem"`
		} `json:"seeded"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &seedBody))
	assert.Equal(t, 3, seedBody.Seeded.Restaurants)
	assert.Equal(t, 4, seedBody.Seeded.MenuItems)

	recorder = e.do(t, http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 3)

	recorder = e.do(t, http.MethodGet, "/restaurants/"+restaurants[0].ID.Hex()+"/menu", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var menu []models.MenuItem
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &menu))
	require.Len(t, menu, 2)
	assert.Equal(t, "Spaghetti Carbonara", menu[0].Name)
	assert.Equal(t, "Margherita Pizza", menu[1].Name)
}

func TestMenuEndpoint_UnknownRestaurantIsEmptyList(t *testing.T) {
	e := newEnv(t)

	recorder := e.do(t, http.MethodGet, "/restaurants/not-an-object-id/menu", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestCreateOrderEndpoint(t *testing.T) {
	e := newEnv(t)

	payload := gin.H{
		"restaurant_id": "65f1a0000000000000000001",
		"customer_name": "Alice",
		"address":       "1 Main St",
		"phone":         "555-0100",
		"items": []gin.H{
			{"menu_item_id": "m1", "name": "Spaghetti Carbonara", "quantity": 2, "price": 14.99},
			{"menu_item_id": "m2", "name": "Margherita Pizza", "quantity": 1, "price": 12.50},
		},
	}

	recorder := e.do(t, http.MethodPost, "/orders", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, 42.48, body["total"])
	assert.NotEmpty(t, body["order_id"])

	persisted, err := e.orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 42.48, persisted[0].Total)
}

func TestCreateOrderEndpoint_IgnoresClientTotal(t *testing.T) {
	e := newEnv(t)

	payload := gin.H{
		"restaurant_id": "65f1a0000000000000000001",
		"customer_name": "Mallory",
		"address":       "1 Main St",
		"phone":         "555-0100",
		"total":         0.01,
		"items": []gin.H{
			{"menu_item_id": "m1", "name": "Spaghetti Carbonara", "quantity": 2, "price": 14.99},
		},
	}

	recorder := e.do(t, http.MethodPost, "/orders", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 29.98, decodeBody(t, recorder)["total"])
}

func TestCreateOrderEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload gin.H
	}{
		{
			name: "empty item list",
			payload: gin.H{
				"restaurant_id": "65f1a0000000000000000001",
				"customer_name": "Alice",
				"address":       "1 Main St",
				"phone":         "555-0100",
				"items":         []gin.H{},
			},
		},
		{
			name: "zero quantity",
			payload: gin.H{
				"restaurant_id": "65f1a0000000000000000001",
				"customer_name": "Alice",
				"address":       "1 Main St",
				"phone":         "555-0100",
				"items": []gin.H{
					{"menu_item_id": "m1", "name": "Tea", "quantity": 0, "price": 2.50},
				},
			},
		},
		{
			name: "missing address",
			payload: gin.H{
				"restaurant_id": "65f1a0000000000000000001",
				"customer_name": "Alice",
				"phone":         "555-0100",
				"items": []gin.H{
					{"menu_item_id": "m1", "name": "Tea", "quantity": 1, "price": 2.50},
				},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			e := newEnv(t)

			recorder := e.do(t, http.MethodPost, "/orders", testCase.payload)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.NotEmpty(t, decodeBody(t, recorder)["error"])

			persisted, err := e.orders.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, persisted)
		})
	}
}

func TestStoreBackedEndpoints_Unavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.New("test")

	// Stores built without a database handle report unavailability.
	catalogService := services.NewCatalogService(storage.NewMongoRestaurantStore(nil), storage.NewMongoMenuItemStore(nil))
	orderService := services.NewOrderService(storage.NewMongoOrderStore(nil))
	seedService := services.NewSeedService(storage.NewMongoRestaurantStore(nil), storage.NewMongoMenuItemStore(nil))

	router := gin.New()
	router.GET("/restaurants", NewRestaurantController(catalogService).GetRestaurants())
	router.POST("/seed", NewSeedController(seedService, log).SeedData())
	router.POST("/orders", NewOrderController(orderService, log).CreateOrder())

	e := &env{router: router}

	recorder := e.do(t, http.MethodGet, "/restaurants", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = e.do(t, http.MethodPost, "/seed", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	order := gin.H{
		"restaurant_id": "65f1a0000000000000000001",
		"customer_name": "Alice",
		"address":       "1 Main St",
		"phone":         "555-0100",
		"items": []gin.H{
			{"menu_item_id": "m1", "name": "Tea", "quantity": 1, "price": 2.50},
		},
	}
	recorder = e.do(t, http.MethodPost, "/orders", order)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "database not configured", decodeBody(t, recorder)["error"])
}

func TestGetOrderEndpoint(t *testing.T) {
	e := newEnv(t)

	payload := gin.H{
		"restaurant_id": "65f1a0000000000000000001",
		"customer_name": "Alice",
		"address":       "1 Main St",
		"phone":         "555-0100",
		"items": []gin.H{
			{"menu_item_id": "m1", "name": "Tea", "quantity": 1, "price": 2.50},
		},
	}
	recorder := e.do(t, http.MethodPost, "/orders", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)
	orderID := decodeBody(t, recorder)["order_id"].(string)

	recorder = e.do(t, http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &order))
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Equal(t, 2.5, order.Total)

	recorder = e.do(t, http.MethodGet, "/orders/65f1a0000000000000000099", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
