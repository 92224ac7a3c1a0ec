package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

// DELETE /medicines/:id
func DeleteMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Medicine{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medicine"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted successfully"})
	}
}
