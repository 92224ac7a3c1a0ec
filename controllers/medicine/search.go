package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

func nameMatch(db *gorm.DB, query string) *gorm.DB {
	pattern := "%" + query + "%"
	return db.Where(
		"name_en ILIKE ? OR name_ru ILIKE ? OR generic ILIKE ? OR company_name ILIKE ?",
		pattern, pattern, pattern, pattern,
	)
}

// GET /medicines/search?query=
func SearchMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
			return
		}

		var medicines []models.Medicine
		if err := nameMatch(db.Model(&models.Medicine{}), query).
			Limit(50).
			Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search medicines"})
			return
		}

		if err := resolveCategoryNames(db, medicines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, medicines)
	}
}

// suggestion is the trimmed projection the autocomplete dropdown renders.
type suggestion struct {
	ID            uint    `json:"id"`
	NameEN        string  `json:"name_en"`
	NameRU        string  `json:"name_ru"`
	Generic       string  `json:"generic"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice"`
}

// GET /medicines/suggestions?query=: real-time autocomplete, capped at ten.
func SearchSuggestions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusOK, []suggestion{})
			return
		}

		var suggestions []suggestion
		if err := nameMatch(db.Model(&models.Medicine{}), query).
			Select("id", "name_en", "name_ru", "generic", "image", "price", "discount_price").
			Limit(10).
			Find(&suggestions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
			return
		}

		c.JSON(http.StatusOK, suggestions)
	}
}
