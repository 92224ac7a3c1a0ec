package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/planet-of-health/pharmacy-api/controllers/order"
	"github.com/planet-of-health/pharmacy-api/middleware"
	"github.com/planet-of-health/pharmacy-api/notify"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, notifier *notify.Notifier) {
	orders := r.Group("/orders")
	{
		orders.POST("", orderControllers.CreateOrderHandler(db, notifier))
		orders.GET("", orderControllers.GetAllOrdersHandler(db))
		orders.GET("/ws", orderControllers.OrderFeedHandler)
		orders.GET("/user/:uid", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
		orders.GET("/:orderID/status", orderControllers.GetOrderStatusHandler(db))
		orders.PUT("/:orderID/status", middleware.RequireAdmin(), orderControllers.UpdateOrderStatusHandler(db))
		orders.PUT("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
		orders.DELETE("/:orderID", middleware.RequireAdmin(), orderControllers.DeleteOrderHandler(db))
	}

	r.POST("/generate-whatsapp-order", orderControllers.GenerateWhatsAppOrderHandler(db, notifier))
}
