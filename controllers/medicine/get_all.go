package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

// resolveCategoryNames overwrites each medicine's denormalized category name
// with the live one, falling back to "Unknown" when the category was deleted
// out from under it.
func resolveCategoryNames(db *gorm.DB, medicines []models.Medicine) error {
	if len(medicines) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(medicines))
	for _, m := range medicines {
		ids = append(ids, m.CategoryID)
	}

	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return err
	}
	byID := make(map[uint]models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	for i := range medicines {
		if cat, ok := byID[medicines[i].CategoryID]; ok {
			medicines[i].CategoryName = cat.Name
			medicines[i].CategoryNameRU = cat.NameRU
		} else {
			medicines[i].CategoryName = "Unknown"
			medicines[i].CategoryNameRU = "Unknown"
		}
	}
	return nil
}

// GET /medicines
func GetMedicines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var medicines []models.Medicine
		if err := db.Find(&medicines).Error; err != nil {
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
