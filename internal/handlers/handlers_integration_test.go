package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Discard()
	m.Run()
}

// setupApp sets up a Fiber app backed by a private in-memory SQLite database.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(config.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, services.Bootstrap(context.Background(), repositories.NewSchemaManager(db)))

	productService := services.NewProductService(repositories.NewGORMProductRepository(db), nil)
	buyerService := services.NewBuyerService(repositories.NewGORMBuyerRepository(db), nil)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewBuyerHandler(buyerService).RegisterRoutes(apiV1)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestProductEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	// --- POST /products with numbers and strings mixed ---
	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":     "Laptop Pro",
		"category": "Electronics",
		"price":    1499.99,
		"quantity": "3",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var laptop models.Product
	decode(t, resp, &laptop)
	assert.Positive(t, laptop.ID)
	assert.Equal(t, 1499.99, laptop.Price)
	assert.Equal(t, 3, laptop.Quantity)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"name":        "USB Cable",
		"category":    "Accessories",
		"price":       "5.99",
		"quantity":    100,
		"description": "1m braided",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var cable models.Product
	decode(t, resp, &cable)

	// --- GET /products ---
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decode(t, resp, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Laptop Pro", products[0].Name)
	assert.Equal(t, cable, products[1])

	// --- GET /products?q= ---
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?q="+url.QueryEscape("ELECTRONICS"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, laptop.ID, products[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?q=xyz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &products)
	assert.Empty(t, products)

	// --- DELETE /products/:id ---
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", cable.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleteResp map[string]string
	decode(t, resp, &deleteResp)
	assert.Contains(t, deleteResp["message"], "deleted successfully")

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", cable.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateProductValidation(t *testing.T) {
	app, db := setupApp(t)

	tests := []struct {
		body  map[string]interface{}
		field string
		kind  models.ValidationKind
	}{
		{map[string]interface{}{"name": " ", "category": "", "price": "x", "quantity": "y"}, "name", models.EmptyField},
		{map[string]interface{}{"name": "Lamp", "category": "", "price": 1, "quantity": 1}, "category", models.EmptyField},
		{map[string]interface{}{"name": "Lamp", "category": "Home", "price": "cheap", "quantity": 1}, "price", models.InvalidFormat},
		{map[string]interface{}{"name": "Lamp", "category": "Home", "price": -2, "quantity": 1}, "price", models.NegativeValue},
		{map[string]interface{}{"name": "Lamp", "category": "Home", "price": "1e400", "quantity": "1"}, "price", models.InvalidFormat},
		{map[string]interface{}{"name": "Lamp", "category": "Home", "price": 2, "quantity": 1.5}, "quantity", models.InvalidFormat},
		{map[string]interface{}{"name": "Lamp", "category": "Home", "price": 2, "quantity": -1}, "quantity", models.NegativeValue},
	}

	for _, tt := range tests {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/products", tt.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body map[string]interface{}
		decode(t, resp, &body)
		assert.Equal(t, tt.field, body["field"])
		assert.Equal(t, string(tt.kind), body["kind"])
	}

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProductEndpointsStorageFailure(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, database.Close(db))

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Could not retrieve products", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestProductEndpointsStorageFailureLoggedOnce(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, database.Close(db))

	var buf bytes.Buffer
	logger.InitWithWriter("inventory-test", false, &buf)
	t.Cleanup(logger.Discard)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, 1, strings.Count(buf.String(), `"level":"error"`))
	assert.Contains(t, buf.String(), "list products")
}

func TestBuyerEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/buyers", map[string]string{
		"name":  " Kiran ",
		"email": "kiran@example.com",
		"phone": "555-0142",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var buyer models.Buyer
	decode(t, resp, &buyer)
	assert.Positive(t, buyer.ID)
	assert.Equal(t, "Kiran", buyer.Name)
	assert.Empty(t, buyer.Address)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/buyers", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/buyers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var buyers []models.Buyer
	decode(t, resp, &buyers)
	require.Len(t, buyers, 1)
	assert.Equal(t, buyer, buyers[0])

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/buyers/%d", buyer.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/buyers/%d", buyer.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
