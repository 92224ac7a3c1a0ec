package medicineControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

const pageSize = 6

// GET /medicines/:id
func GetMedicineByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var medicine models.Medicine
		if err := db.First(&medicine, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicine"})
			return
		}

		medicines := []models.Medicine{medicine}
		if err := resolveCategoryNames(db, medicines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}

		c.JSON(http.StatusOK, medicines[0])
	}
}

// GET /medicines/category/:categoryId
func GetMedicinesByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")

		var medicines []models.Medicine
		if err := db.Where("category_id = ?", categoryID).Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicines"})
			return
		}

		if err := resolveCategoryNames(db, medicines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, medicines)
	}
}

// GET /medicine_count
func MedicineCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&models.Medicine{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count medicines"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// GET /pagenition_medicines?skip=N: pages of six, as the storefront's paged
// grid requests them. The route name is part of the public API.
func PaginatedMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, err := strconv.Atoi(c.Query("skip"))
		if err != nil || skip < 0 {
			skip = 0
		}

		var medicines []models.Medicine
		if err := db.Offset(skip * pageSize).Limit(pageSize).Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicines"})
			return
		}

		c.JSON(http.StatusOK, medicines)
	}
}
