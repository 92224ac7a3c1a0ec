package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/planet-of-health/pharmacy-api/controllers/cart"
	userControllers "github.com/planet-of-health/pharmacy-api/controllers/user"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/users", userControllers.UpsertUser(db))
	r.POST("/login", userControllers.Login(db))
	r.GET("/users", userControllers.GetAllUsers(db))
	r.GET("/users/:uid", userControllers.GetUser(db))
	r.PUT("/users/:uid", userControllers.UpdateUser(db))

	cart := r.Group("/cart")
	{
		cart.POST("/:uid", cartControllers.AddToCart(db))
		cart.GET("/:uid", cartControllers.GetCart(db))
		cart.PUT("/:uid/:medicineId", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:uid/:medicineId", cartControllers.RemoveCartItem(db))
		cart.DELETE("/:uid", cartControllers.ClearCart(db))
	}
}
