package galleryControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

type GalleryImageInput struct {
	Title string `json:"title"`
	Image string `json:"image" binding:"required"`
}

// GET /gallery: carousel order.
func ListImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []models.GalleryImage
		if err := db.Order("display_order ASC").Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// GET /gallery/:id
func GetImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var image models.GalleryImage
		if err := db.First(&image, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusOK, image)
	}
}

// POST /gallery: appended after the current last image.
func CreateImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GalleryImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}

		nextOrder := 0
		var last models.GalleryImage
		err := db.Order("display_order DESC").First(&last).Error
		if err == nil {
			nextOrder = last.DisplayOrder + 1
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read gallery"})
			return
		}

		date, clock := models.Stamp()
		image := models.GalleryImage{
			Title:        input.Title,
			Image:        input.Image,
			DisplayOrder: nextOrder,
			CreatedDate:  date,
			CreatedTime:  clock,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
			return
		}

		c.JSON(http.StatusCreated, image)
	}
}

type ReorderRequest struct {
	Images []struct {
		ID uint `json:"id"`
	} `json:"images" binding:"required"`
}

// PUT /gallery/reorder: drag-and-drop result: positions are rewritten from
// the submitted order, in one transaction.
func ReorderImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "images array required"})
			return
		}

		date, clock := models.Stamp()
		err := db.Transaction(func(tx *gorm.DB) error {
			for index, img := range req.Images {
				if err := tx.Model(&models.GalleryImage{}).Where("id = ?", img.ID).
					Updates(map[string]interface{}{
						"display_order": index,
						"updated_date":  date,
						"updated_time":  clock,
					}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

// PUT /gallery/:id
func UpdateImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var image models.GalleryImage
		if err := db.First(&image, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		var input struct {
			Title *string `json:"title"`
			Image *string `json:"image"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		if input.Title != nil {
			image.Title = *input.Title
		}
		if input.Image != nil {
			image.Image = *input.Image
		}
		image.UpdatedDate, image.UpdatedTime = models.Stamp()

		if err := db.Save(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
			return
		}

		c.JSON(http.StatusOK, image)
	}
}

// DELETE /gallery/:id
func DeleteImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.GalleryImage{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
	}
}
