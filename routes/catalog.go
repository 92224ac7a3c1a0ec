package routes

import (
	"github.com/gin-gonic/gin"
	categoryControllers "github.com/planet-of-health/pharmacy-api/controllers/category"
	galleryControllers "github.com/planet-of-health/pharmacy-api/controllers/gallery"
	medicineControllers "github.com/planet-of-health/pharmacy-api/controllers/medicine"
	"github.com/planet-of-health/pharmacy-api/middleware"
	"gorm.io/gorm"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/categories", categoryControllers.GetCategories(db))
	r.POST("/categories", middleware.RequireAdmin(), categoryControllers.CreateCategory(db))
	r.PUT("/categories/:id", middleware.RequireAdmin(), categoryControllers.UpdateCategory(db))
	r.DELETE("/categories/:id", middleware.RequireAdmin(), categoryControllers.DeleteCategory(db))

	r.GET("/medicines", medicineControllers.GetMedicines(db))
	r.GET("/medicines/search", medicineControllers.SearchMedicines(db))
	r.GET("/medicines/suggestions", medicineControllers.SearchSuggestions(db))
	r.GET("/medicines/export", middleware.RequireAdmin(), medicineControllers.ExportMedicinesToExcel(db))
	r.GET("/medicines/category/:categoryId", medicineControllers.GetMedicinesByCategory(db))
	r.GET("/medicines/:id", medicineControllers.GetMedicineByID(db))
	r.GET("/medicine_count", medicineControllers.MedicineCount(db))
	r.GET("/pagenition_medicines", medicineControllers.PaginatedMedicines(db))
	r.POST("/medicines", middleware.RequireAdmin(), medicineControllers.CreateMedicine(db))
	r.PUT("/medicines/:id", middleware.RequireAdmin(), medicineControllers.UpdateMedicine(db))
	r.DELETE("/medicines/:id", middleware.RequireAdmin(), medicineControllers.DeleteMedicine(db))

	gallery := r.Group("/gallery")
	{
		gallery.GET("", galleryControllers.ListImages(db))
		gallery.GET("/:id", galleryControllers.GetImage(db))
		gallery.POST("", middleware.RequireAdmin(), galleryControllers.CreateImage(db))
		gallery.PUT("/reorder", middleware.RequireAdmin(), galleryControllers.ReorderImages(db))
		gallery.PUT("/:id", middleware.RequireAdmin(), galleryControllers.UpdateImage(db))
		gallery.DELETE("/:id", middleware.RequireAdmin(), galleryControllers.DeleteImage(db))
	}
}
