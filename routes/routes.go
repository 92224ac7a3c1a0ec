package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/notify"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, notifier *notify.Notifier) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Pharmacy API is running"})
	})

	SetupUserRoutes(r, db)
	SetupOrderRoutes(r, db, notifier)
	SetupCatalogRoutes(r, db)
	SetupAdminRoutes(r, db, notifier)
}
