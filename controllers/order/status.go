package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelOrderRequest struct {
	UserID string `json:"userId"`
}

var (
	ErrNotOwner   = errors.New("order does not belong to this user")
	ErrNotPending = errors.New("only pending orders can be cancelled")
)

// mapOrderStatus parses one of the four order states, case-insensitively.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if strings.EqualFold(status, string(s)) {
			return s, nil
		}
	}
	return "", errors.New("invalid order status")
}

// CancelGuard validates a user-initiated cancellation: the requesting user
// must own the order, and only Pending orders may be cancelled. Any failure
// leaves the order untouched.
func CancelGuard(order models.Order, userID string) error {
	if order.UserID != userID {
		return ErrNotOwner
	}
	if order.Status != models.OrderStatusPending {
		return fmt.Errorf("cannot cancel %s orders: %w", strings.ToLower(string(order.Status)), ErrNotPending)
	}
	return nil
}

// PUT /orders/:orderID/status: administrative transition, unrestricted among
// the four states.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		date, clock := models.Stamp()
		result := orderKeyQuery(db.Model(&models.Order{}), orderID).Updates(map[string]interface{}{
			"status":       newStatus,
			"updated_date": date,
			"updated_time": clock,
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /orders/:orderID/cancel: user-initiated, Pending→Cancelled only.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req CancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
			return
		}

		var order models.Order
		if err := orderKeyQuery(db, orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		if err := CancelGuard(order, req.UserID); err != nil {
			if errors.Is(err, ErrNotOwner) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		date, clock := models.Stamp()
		if err := db.Model(&order).Updates(map[string]interface{}{
			"status":         models.OrderStatusCancelled,
			"cancelled_date": date,
			"cancelled_time": clock,
			"updated_date":   date,
			"updated_time":   clock,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
	}
}

// GET /orders/:orderID/status: status and timestamp projection.
func GetOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := orderKeyQuery(db.Select("id", "status", "order_date", "order_time",
			"updated_date", "updated_time", "cancelled_date", "cancelled_time"), orderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        order.Status,
			"orderDate":     order.OrderDate,
			"orderTime":     order.OrderTime,
			"updatedDate":   order.UpdatedDate,
			"updatedTime":   order.UpdatedTime,
			"cancelledDate": order.CancelledDate,
			"cancelledTime": order.CancelledTime,
		})
	}
}
