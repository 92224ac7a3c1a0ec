package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	MedicineID uint `json:"medicineId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// mergeLine folds a new line into the cart's items, summing quantities when
// the medicine is already present. A cart never carries duplicate lines for
// one medicine.
func mergeLine(items []models.CartItem, medicineID uint, quantity int) []models.CartItem {
	for i := range items {
		if items[i].MedicineID == medicineID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, models.CartItem{MedicineID: medicineID, Quantity: quantity})
}

func parseMedicineID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("medicineId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine ID"})
		return 0, false
	}
	return uint(id), true
}

// POST /cart/:uid: add or merge an item into the user's cart, creating the
// cart on first use.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Medicine ID and quantity required"})
			return
		}

		var medicine models.Medicine
		if err := db.First(&medicine, "id = ?", input.MedicineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate medicine"})
			return
		}

		date, clock := models.Stamp()

		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", uid).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: uid, CreatedDate: date, CreatedTime: clock}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		cart.Items = mergeLine(cart.Items, input.MedicineID, input.Quantity)
		cart.UpdatedDate = date
		cart.UpdatedTime = clock

		if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cart": cart})
	}
}

// cartMedicine is the catalog detail embedded in a populated cart item.
type cartMedicine struct {
	ID            uint    `json:"id"`
	Image         string  `json:"image"`
	Power         string  `json:"power"`
	CompanyName   string  `json:"companyName"`
	PackQuantity  string  `json:"quantity"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice"`
	Generic       string  `json:"generic"`
	CategoryName  string  `json:"categoryName"`
	NameEN        string  `json:"name_en"`
	NameRU        string  `json:"name_ru"`
}

type populatedCartItem struct {
	MedicineID uint         `json:"medicineId"`
	Quantity   int          `json:"quantity"`
	Medicine   cartMedicine `json:"medicine"`
}

// GET /cart/:uid: the cart with medicine and category details resolved in
// two batched queries. Lines whose medicine vanished are filtered out here,
// the same leniency checkout applies.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")

		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", uid).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			c.JSON(http.StatusOK, gin.H{"uid": uid, "items": []populatedCartItem{}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		ids := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			ids = append(ids, item.MedicineID)
		}

		var medicines []models.Medicine
		if err := db.Where("id IN ?", ids).Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicines"})
			return
		}

		categoryIDs := make([]uint, 0, len(medicines))
		for _, m := range medicines {
			categoryIDs = append(categoryIDs, m.CategoryID)
		}
		var categories []models.Category
		if len(categoryIDs) > 0 {
			if err := db.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}
		categoryNames := make(map[uint]string, len(categories))
		for _, cat := range categories {
			categoryNames[cat.ID] = cat.Name
		}

		medicineMap := make(map[uint]models.Medicine, len(medicines))
		for _, m := range medicines {
			medicineMap[m.ID] = m
		}

		items := make([]populatedCartItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			med, ok := medicineMap[item.MedicineID]
			if !ok {
				continue
			}
			categoryName := categoryNames[med.CategoryID]
			if categoryName == "" {
				categoryName = "Unknown"
			}
			items = append(items, populatedCartItem{
				MedicineID: item.MedicineID,
				Quantity:   item.Quantity,
				Medicine: cartMedicine{
					ID:            med.ID,
					Image:         med.Image,
					Power:         med.Power,
					CompanyName:   med.CompanyName,
					PackQuantity:  med.PackQuantity,
					Price:         med.Price,
					DiscountPrice: med.DiscountPrice,
					Generic:       med.Generic,
					CategoryName:  categoryName,
					NameEN:        med.NameEN,
					NameRU:        med.NameRU,
				},
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"uid":         cart.UserID,
			"items":       items,
			"createdDate": cart.CreatedDate,
			"createdTime": cart.CreatedTime,
			"updatedDate": cart.UpdatedDate,
			"updatedTime": cart.UpdatedTime,
		})
	}
}

// PUT /cart/:uid/:medicineId: set a line's quantity.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		medicineID, ok := parseMedicineID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", uid).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("cart_id = ? AND medicine_id = ?", cart.CartID, medicineID).
			Update("quantity", input.Quantity)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		date, clock := models.Stamp()
		db.Model(&cart).Updates(map[string]interface{}{"updated_date": date, "updated_time": clock})

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/:uid/:medicineId: remove one line.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		medicineID, ok := parseMedicineID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", uid).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		if err := db.Where("cart_id = ? AND medicine_id = ?", cart.CartID, medicineID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		date, clock := models.Stamp()
		db.Model(&cart).Updates(map[string]interface{}{"updated_date": date, "updated_time": clock})

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /cart/:uid: delete the whole cart. Items go with it.
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")

		result := db.Where("user_id = ?", uid).Delete(&models.Cart{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
