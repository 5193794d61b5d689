package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"chai_pos_backend/internal/database"
	"chai_pos_backend/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	engine := gin.New()
	router.Setup(engine, db)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response should carry an error object: %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func TestOrderFlow(t *testing.T) {
	engine := setupAPI(t)

	// Capture the customer.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", gin.H{
		"name":  "Priya Sharma",
		"phone": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customerID := decodeBody(t, w)["id"].(float64)

	// Advisory cart check.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders/cart/check", gin.H{
		"item_id":  5,
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	line := decodeBody(t, w)
	assert.Equal(t, "Samosa", line["item_name"])
	assert.Equal(t, 100.0, line["line_total"])

	// Confirm the order.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customerID,
		"lines":       []gin.H{{"item_id": 5, "quantity": 5}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeBody(t, w)
	assert.Equal(t, "Pending", order["status"])
	assert.Equal(t, 100.0, order["total"])
	assert.Equal(t, "Samosa x5", order["items_text"])
	orderID := int64(order["id"].(float64))

	// Stock was decremented.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/menu/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 55.0, decodeBody(t, w)["stock"])

	// Bill view.
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d/bill", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	bill := decodeBody(t, w)
	assert.Equal(t, "Priya Sharma", bill["customer_name"])
	assert.Equal(t, 100.0, bill["total"])

	// Complete the order.
	w = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/complete", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Completed", decodeBody(t, w)["status"])

	// Revenue made it into the report.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/reports/revenue?period=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decodeBody(t, w)
	assert.Equal(t, 100.0, report["total_revenue"])
	assert.Equal(t, 1.0, report["total_orders"])

	// Nothing left pending on the dashboard.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, decodeBody(t, w)["pending_orders_count"])
}

func TestConfirmOrderInsufficientStockResponse(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", gin.H{
		"name":  "Priya Sharma",
		"phone": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customerID,
		"lines":       []gin.H{{"item_id": 9, "quantity": 999}},
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, w))

	// Stock untouched.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/menu/9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25.0, decodeBody(t, w)["stock"])
}

func TestCreateMenuItemValidationResponse(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/menu", gin.H{
		"category":  "Chai",
		"item_name": "Elaichi Chai",
		"price":     -5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestGetUnknownOrderResponse(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestRevenueReportUnknownPeriodResponse(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/reports/revenue?period=fortnight", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestAdjustStockEndpoint(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodPatch, "/api/v1/menu/1/stock", gin.H{"delta": 10})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 60.0, decodeBody(t, w)["stock"])

	w = doJSON(t, engine, http.MethodPatch, "/api/v1/menu/1/stock", gin.H{"delta": -100})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, w))
}

func TestBulkCompleteEndpoint(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", gin.H{
		"name":  "Priya Sharma",
		"phone": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customerID,
		"lines":       []gin.H{{"item_id": 5, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, engine, http.MethodPatch, "/api/v1/orders/complete", gin.H{
		"order_ids": []float64{orderID, 999},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	results, ok := decodeBody(t, w)["results"].([]interface{})
	require.True(t, ok)
	require.Len(t, results, 2)

	first := results[0].(map[string]interface{})
	assert.Equal(t, "Completed", first["status"])
	second := results[1].(map[string]interface{})
	assert.NotEmpty(t, second["error"])
}
