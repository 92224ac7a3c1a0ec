package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/planet-of-health/pharmacy-api/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Medicine{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.FCMToken{},
	))
	return db
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateOrderAppliesNoSurcharge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "user-1", Email: "jane@example.com", DisplayName: "Jane"}).Error)
	require.NoError(t, db.Create(&models.Medicine{ID: 1, NameEN: "Paracetamol", Price: 10.00}).Error)
	require.NoError(t, db.Create(&models.Medicine{ID: 2, NameEN: "Ibuprofen", Price: 6.00, DiscountPrice: 4.50}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/orders",
		`{"userId":"user-1","medicines":[{"medicineId":1,"quantity":2},{"medicineId":2,"quantity":1}]}`)
	CreateOrderHandler(db, &notify.Notifier{DB: db})(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, models.OrderTypeStandard, order.OrderType)
	assert.InDelta(t, 24.50, order.Subtotal, 1e-9)
	assert.Zero(t, order.VAT)
	assert.Zero(t, order.Discount)
	assert.Equal(t, order.Subtotal, order.TotalPrice)
	require.Len(t, order.Items, 2)
}

func TestCreateOrderClearsCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "user-1", Email: "jane@example.com"}).Error)
	require.NoError(t, db.Create(&models.Medicine{ID: 1, NameEN: "Paracetamol", Price: 10.00}).Error)
	require.NoError(t, db.Create(&models.Cart{
		UserID: "user-1",
		Items:  []models.CartItem{{MedicineID: 1, Quantity: 3}},
	}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/orders",
		`{"userId":"user-1","medicines":[{"medicineId":1,"quantity":1}]}`)
	CreateOrderHandler(db, &notify.Notifier{DB: db})(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var carts int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&carts).Error)
	assert.Zero(t, carts)
}

func TestStatusLookupByOrderRef(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	order := models.Order{
		OrderRef: "20260901101500-abc",
		UserID:   "user-1",
		Status:   models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "orderID", Value: order.OrderRef}}
	c.Request = httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderRef+"/status", nil)
	GetOrderStatusHandler(db)(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), string(models.OrderStatusPending))
}

func TestCancelLookupByOrderRef(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	order := models.Order{
		OrderRef: "20260901101500-def",
		UserID:   "user-1",
		Status:   models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "orderID", Value: order.OrderRef}}
	c.Request = jsonRequest(http.MethodPut, "/orders/"+order.OrderRef+"/cancel", `{"userId":"user-1"}`)
	CancelOrderHandler(db)(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, reloaded.Status)
}
