package categoryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

// CategoryListing is a category plus how many medicines it currently holds.
type CategoryListing struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	NameRU        string `json:"name_ru"`
	Description   string `json:"description"`
	DescriptionRU string `json:"description_ru"`
	MedicineCount int64  `json:"medicineCount"`
	CreatedDate   string `json:"createdDate"`
	CreatedTime   string `json:"createdTime"`
}

type CategoryInput struct {
	Name          string `json:"name" binding:"required"`
	NameRU        string `json:"name_ru"`
	Description   string `json:"description"`
	DescriptionRU string `json:"description_ru"`
}

// GET /categories: served from the cache cell when fresh; otherwise one
// categories query plus one grouped medicine count.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if payload, ok := cache.get(); ok {
			c.JSON(http.StatusOK, payload)
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		type countRow struct {
			CategoryID uint
			Count      int64
		}
		var counts []countRow
		if err := db.Model(&models.Medicine{}).
			Select("category_id, COUNT(*) AS count").
			Group("category_id").
			Find(&counts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count medicines"})
			return
		}
		countMap := make(map[uint]int64, len(counts))
		for _, row := range counts {
			countMap[row.CategoryID] = row.Count
		}

		payload := make([]CategoryListing, 0, len(categories))
		for _, cat := range categories {
			payload = append(payload, CategoryListing{
				ID:            cat.ID,
				Name:          cat.Name,
				NameRU:        cat.NameRU,
				Description:   cat.Description,
				DescriptionRU: cat.DescriptionRU,
				MedicineCount: countMap[cat.ID],
				CreatedDate:   cat.CreatedDate,
				CreatedTime:   cat.CreatedTime,
			})
		}

		cache.put(payload)
		c.JSON(http.StatusOK, payload)
	}
}

// POST /categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		date, clock := models.Stamp()
		category := models.Category{
			Name:          input.Name,
			NameRU:        input.NameRU,
			Description:   input.Description,
			DescriptionRU: input.DescriptionRU,
			CreatedDate:   date,
			CreatedTime:   clock,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		cache.clear()
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
			return
		}

		var input struct {
			Name          *string `json:"name"`
			NameRU        *string `json:"name_ru"`
			Description   *string `json:"description"`
			DescriptionRU *string `json:"description_ru"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.NameRU != nil {
			category.NameRU = *input.NameRU
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		if input.DescriptionRU != nil {
			category.DescriptionRU = *input.DescriptionRU
		}
		category.UpdatedDate, category.UpdatedTime = models.Stamp()

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		cache.clear()
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Category{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		cache.clear()
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
