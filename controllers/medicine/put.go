package medicineControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

type UpdateMedicineInput struct {
	CategoryID    *uint    `json:"categoryId"`
	NameEN        *string  `json:"name_en"`
	NameRU        *string  `json:"name_ru"`
	Generic       *string  `json:"generic"`
	CompanyName   *string  `json:"companyName"`
	Power         *string  `json:"power"`
	Image         *string  `json:"image"`
	PackQuantity  *string  `json:"quantity"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
}

// PUT /medicines/:id: partial update; re-categorizing refreshes the
// denormalized category names.
func UpdateMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var medicine models.Medicine
		if err := db.First(&medicine, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load medicine"})
			return
		}

		var input UpdateMedicineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
				return
			}
			medicine.CategoryID = category.ID
			medicine.CategoryName = category.Name
			medicine.CategoryNameRU = category.NameRU
			if medicine.CategoryNameRU == "" {
				medicine.CategoryNameRU = category.Name
			}
		}

		if input.NameEN != nil {
			medicine.NameEN = *input.NameEN
		}
		if input.NameRU != nil {
			medicine.NameRU = *input.NameRU
		}
		if input.Generic != nil {
			medicine.Generic = *input.Generic
		}
		if input.CompanyName != nil {
			medicine.CompanyName = *input.CompanyName
		}
		if input.Power != nil {
			medicine.Power = *input.Power
		}
		if input.Image != nil {
			medicine.Image = *input.Image
		}
		if input.PackQuantity != nil {
			medicine.PackQuantity = *input.PackQuantity
		}
		if input.Price != nil {
			medicine.Price = *input.Price
		}
		if input.DiscountPrice != nil {
			medicine.DiscountPrice = *input.DiscountPrice
		}
		medicine.UpdatedDate, medicine.UpdatedTime = models.Stamp()

		if err := db.Save(&medicine).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update medicine"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "medicine": medicine})
	}
}
