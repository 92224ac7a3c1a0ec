package orderControllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/planet-of-health/pharmacy-api/notify"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	UserID      string    `json:"userId"`
	PhoneNumber string    `json:"phoneNumber"`
	Medicines   []LineRef `json:"medicines"`
}

var ErrCartEmpty = errors.New("cart is empty")

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// orderKeyQuery narrows a query to one order by either its numeric primary
// key or its public reference string. The two are never mixed in one clause:
// comparing the integer id column against a non-numeric string is a cast
// error in Postgres.
func orderKeyQuery(db *gorm.DB, id string) *gorm.DB {
	if _, err := strconv.ParseUint(id, 10, 64); err == nil {
		return db.Where("id = ?", id)
	}
	return db.Where("order_ref = ?", id)
}

// -------- Core Logic --------

// assembleOrder persists a priced snapshot for the user, clears the user's
// cart and notifies every admin device. The order insert and the cart clear
// are independent writes with no wrapping transaction: concurrent checkouts
// for the same user are not serialized and the last writer wins. The cart
// clear is unconditional and is not rolled back if anything after it fails.
func assembleOrder(db *gorm.DB, notifier *notify.Notifier, user models.User, phone string,
	summary CartSummary, orderType, notifTitle string, vat, discount, grandTotal float64) (models.Order, error) {

	date, clock := models.Stamp()

	if phone == "" {
		phone = user.PhoneNumber
	}
	if phone == "" {
		phone = "Not provided"
	}
	address := user.Address
	if address == "" {
		address = "Not provided"
	}
	name := user.DisplayName
	if name == "" {
		name = "Guest"
	}

	order := models.Order{
		OrderRef:        generateOrderRef(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserName:        name,
		UserPhone:       phone,
		DeliveryAddress: address,
		Subtotal:        summary.Subtotal,
		VAT:             vat,
		Discount:        discount,
		TotalPrice:      grandTotal,
		OrderType:       orderType,
		Status:          models.OrderStatusPending,
		OrderDate:       date,
		OrderTime:       clock,
	}
	for _, line := range summary.Lines {
		order.Items = append(order.Items, models.OrderItem{
			MedicineID: line.MedicineID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Total:      line.Total,
		})
	}

	if err := db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	if summary.Dropped > 0 {
		log.Printf("⚠️ Order %s: dropped %d line(s) referencing medicines missing from the catalog", order.OrderRef, summary.Dropped)
	}

	// Cart clear happens after the order is committed and is never undone.
	if err := db.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
		log.Printf("⚠️ Failed to clear cart for user %s after order %d: %v", user.ID, order.ID, err)
	}

	body := fmt.Sprintf("Order #%d - %s - $%.2f", order.ID, user.DisplayLabel(), grandTotal)
	notifier.NotifyAdmins(context.Background(), notifTitle, body, map[string]string{
		"orderId":      strconv.FormatUint(uint64(order.ID), 10),
		"orderType":    orderType,
		"click_action": "/orders",
	})

	broadcastNewOrder(order)

	return order, nil
}

// -------- Handlers --------

// POST /orders: create an order from an explicit medicine list. No VAT or
// discount is applied on this path; the grand total equals the subtotal.
func CreateOrderHandler(db *gorm.DB, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		catalog, err := loadCatalog(db, req.Medicines)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load medicines"})
			return
		}
		summary := PriceLines(req.Medicines, catalog)

		order, err := assembleOrder(db, notifier, user, req.PhoneNumber, summary,
			models.OrderTypeStandard, "New Order Received", 0, 0, summary.Subtotal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"orderId": order.ID,
			"order":   order,
		})
	}
}

// GET /orders: all orders, newest first (admin dashboard).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/user/:uid
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if uid == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
			return
		}
		var orders []models.Order
		if err := db.Where("user_id = ?", uid).Preload("Items").Order("id DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")

		var order models.Order
		if err := orderKeyQuery(db.Preload("Items"), id).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:orderID (admin)
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := orderKeyQuery(db, orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
