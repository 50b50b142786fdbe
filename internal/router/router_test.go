package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/f1store-next/internal/config"
	"github.com/f1store-next/internal/constants"
	"github.com/f1store-next/internal/logger"
	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/provider"
)

// setupAPITest 起一个完整路由栈（sqlite 内存库，Redis/队列关闭）
func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	tables := []interface{}{
		&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	}
	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container), db
}

func apiRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v (body %s)", err, w.Body.String())
	}
	return resp
}

func statusCode(t *testing.T, resp map[string]interface{}) int {
	t.Helper()
	code, ok := resp["status_code"].(float64)
	if !ok {
		t.Fatalf("missing status_code in %+v", resp)
	}
	return int(code)
}

func seedAPIProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:  name,
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Team:  "Williams",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestAPICartCheckoutFlow(t *testing.T) {
	r, db := setupAPITest(t)
	polo := seedAPIProduct(t, db, "Team Polo", 55)
	cap := seedAPIProduct(t, db, "Driver Cap", 20)

	// 加购两种商品
	w := apiRequest(t, r, http.MethodPost, "/api/v1/users/1/cart/items",
		gin.H{"product_id": polo.ID, "quantity": 2})
	if code := statusCode(t, decodeResponse(t, w)); code != 0 {
		t.Fatalf("add polo: unexpected status_code %d", code)
	}
	w = apiRequest(t, r, http.MethodPost, "/api/v1/users/1/cart/items",
		gin.H{"product_id": cap.ID, "quantity": 1})
	if code := statusCode(t, decodeResponse(t, w)); code != 0 {
		t.Fatalf("add cap: unexpected status_code %d", code)
	}

	// 结算
	w = apiRequest(t, r, http.MethodPost, "/api/v1/users/1/checkout", gin.H{
		"shipping_address":     "1 Racing Line",
		"shipping_city":        "Monza",
		"shipping_postal_code": "20900",
		"shipping_country":     "Italy",
	})
	resp := decodeResponse(t, w)
	if code := statusCode(t, resp); code != 0 {
		t.Fatalf("checkout failed: %+v", resp)
	}
	data := resp["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})
	if order["total_amount"] != "130.00" {
		t.Fatalf("expected total 130.00, got %v", order["total_amount"])
	}
	if order["status"] != constants.OrderStatusPending {
		t.Fatalf("expected pending order, got %v", order["status"])
	}

	// 结算后购物车为空
	w = apiRequest(t, r, http.MethodGet, "/api/v1/users/1/cart", nil)
	resp = decodeResponse(t, w)
	cart := resp["data"].(map[string]interface{})["cart"].(map[string]interface{})
	if items := cart["items"].([]interface{}); len(items) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items", len(items))
	}

	// 空车再结算返回 400
	w = apiRequest(t, r, http.MethodPost, "/api/v1/users/1/checkout", gin.H{
		"shipping_address":     "1 Racing Line",
		"shipping_city":        "Monza",
		"shipping_postal_code": "20900",
		"shipping_country":     "Italy",
	})
	if code := statusCode(t, decodeResponse(t, w)); code != 400 {
		t.Fatalf("expected 400 for empty cart checkout, got %d", code)
	}
}

func TestAPIAdminOrderStatusAndDashboard(t *testing.T) {
	r, db := setupAPITest(t)
	polo := seedAPIProduct(t, db, "Team Polo", 55)

	apiRequest(t, r, http.MethodPost, "/api/v1/users/1/cart/items",
		gin.H{"product_id": polo.ID, "quantity": 2})
	w := apiRequest(t, r, http.MethodPost, "/api/v1/users/1/checkout", gin.H{
		"shipping_address":     "1 Racing Line",
		"shipping_city":        "Monza",
		"shipping_postal_code": "20900",
		"shipping_country":     "Italy",
	})
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := int(order["id"].(float64))

	// Pending 不计入营收
	w = apiRequest(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil)
	resp = decodeResponse(t, w)
	summary := resp["data"].(map[string]interface{})["summary"].(map[string]interface{})
	if summary["total_revenue"] != "0.00" {
		t.Fatalf("expected zero revenue for pending order, got %v", summary["total_revenue"])
	}
	if summary["total_orders"].(float64) != 1 {
		t.Fatalf("expected 1 order, got %v", summary["total_orders"])
	}

	// 非法状态返回 400
	w = apiRequest(t, r, http.MethodPut, fmt.Sprintf("/api/v1/admin/orders/%d/status", orderID),
		gin.H{"status": "Bogus"})
	if code := statusCode(t, decodeResponse(t, w)); code != 400 {
		t.Fatalf("expected 400 for bogus status, got %d", code)
	}

	// 发货后计入营收
	w = apiRequest(t, r, http.MethodPut, fmt.Sprintf("/api/v1/admin/orders/%d/status", orderID),
		gin.H{"status": constants.OrderStatusShipped})
	if code := statusCode(t, decodeResponse(t, w)); code != 0 {
		t.Fatalf("expected status update to succeed")
	}
	w = apiRequest(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil)
	resp = decodeResponse(t, w)
	summary = resp["data"].(map[string]interface{})["summary"].(map[string]interface{})
	if summary["total_revenue"] != "110.00" {
		t.Fatalf("expected revenue 110.00 after shipping, got %v", summary["total_revenue"])
	}

	// 删除订单后 404
	w = apiRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/admin/orders/%d", orderID), nil)
	if code := statusCode(t, decodeResponse(t, w)); code != 0 {
		t.Fatalf("expected delete to succeed")
	}
	w = apiRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/admin/orders/%d", orderID), nil)
	if code := statusCode(t, decodeResponse(t, w)); code != 404 {
		t.Fatalf("expected 404 after delete, got %d", code)
	}
}

func TestAPIUserOrderIsolation(t *testing.T) {
	r, db := setupAPITest(t)
	polo := seedAPIProduct(t, db, "Team Polo", 55)

	apiRequest(t, r, http.MethodPost, "/api/v1/users/2/cart/items",
		gin.H{"product_id": polo.ID, "quantity": 1})
	w := apiRequest(t, r, http.MethodPost, "/api/v1/users/2/checkout", gin.H{
		"shipping_address":     "1 Racing Line",
		"shipping_city":        "Monza",
		"shipping_postal_code": "20900",
		"shipping_country":     "Italy",
	})
	resp := decodeResponse(t, w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := int(order["id"].(float64))

	// 其他用户看不到该订单
	w = apiRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/1/orders/%d", orderID), nil)
	if code := statusCode(t, decodeResponse(t, w)); code != 404 {
		t.Fatalf("expected 404 for foreign order, got %d", code)
	}
	w = apiRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/2/orders/%d", orderID), nil)
	if code := statusCode(t, decodeResponse(t, w)); code != 0 {
		t.Fatalf("owner should see own order")
	}
}
