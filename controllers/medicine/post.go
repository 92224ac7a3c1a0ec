package medicineControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

type MedicineInput struct {
	CategoryID    uint    `json:"categoryId" binding:"required"`
	NameEN        string  `json:"name_en" binding:"required"`
	NameRU        string  `json:"name_ru"`
	Generic       string  `json:"generic"`
	CompanyName   string  `json:"companyName"`
	Power         string  `json:"power"`
	Image         string  `json:"image"`
	PackQuantity  string  `json:"quantity"`
	Price         float64 `json:"price" binding:"required"`
	DiscountPrice float64 `json:"discountPrice"`
}

// POST /medicines: the category must exist; its names are copied onto the
// medicine.
func CreateMedicine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MedicineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		nameRU := category.NameRU
		if nameRU == "" {
			nameRU = category.Name
		}

		date, clock := models.Stamp()
		medicine := models.Medicine{
			CategoryID:     input.CategoryID,
			CategoryName:   category.Name,
			CategoryNameRU: nameRU,
			NameEN:         input.NameEN,
			NameRU:         input.NameRU,
			Generic:        input.Generic,
			CompanyName:    input.CompanyName,
			Power:          input.Power,
			Image:          input.Image,
			PackQuantity:   input.PackQuantity,
			Price:          input.Price,
			DiscountPrice:  input.DiscountPrice,
			CreatedDate:    date,
			CreatedTime:    clock,
		}

		if err := db.Create(&medicine).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create medicine"})
			return
		}

		c.JSON(http.StatusCreated, medicine)
	}
}
