package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/planet-of-health/pharmacy-api/controllers/admin"
	"github.com/planet-of-health/pharmacy-api/middleware"
	"github.com/planet-of-health/pharmacy-api/notify"
	"gorm.io/gorm"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, notifier *notify.Notifier) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", adminControllers.AdminLogin(db))
		admin.POST("/create", adminControllers.CreateAdmin(db))
		admin.PUT("/change-password/:id", middleware.RequireAdmin(), adminControllers.ChangeAdminPassword(db))
		admin.POST("/save-fcm-token", middleware.RequireAdmin(), adminControllers.SaveFCMToken(db))
	}

	r.POST("/send-notification", middleware.RequireAdmin(), adminControllers.SendNotification(db, notifier))
}
