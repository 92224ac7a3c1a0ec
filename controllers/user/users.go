package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

type UpsertUserInput struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateUserInput struct {
	DisplayName *string `json:"displayName"`
	PhoneNumber *string `json:"phoneNumber"`
	PhotoURL    *string `json:"photoURL"`
	Address     *string `json:"address"`
}

// POST /users: create the user on first sign-in, refresh the profile and
// last-login stamp afterwards. The uid comes from the identity provider and
// is not re-validated here.
func UpsertUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpsertUserInput
		if err := c.ShouldBindJSON(&input); err != nil || input.UID == "" || input.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "UID and email required"})
			return
		}

		date, clock := models.Stamp()

		var existing models.User
		err := db.First(&existing, "id = ?", input.UID).Error
		if err == nil {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"email":           input.Email,
				"display_name":    input.DisplayName,
				"photo_url":       input.PhotoURL,
				"phone_number":    input.PhoneNumber,
				"last_login_date": date,
				"last_login_time": clock,
			}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "User updated", "userId": existing.ID})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		user := models.User{
			ID:            input.UID,
			Email:         input.Email,
			DisplayName:   input.DisplayName,
			PhotoURL:      input.PhotoURL,
			PhoneNumber:   input.PhoneNumber,
			Role:          "customer",
			CreatedDate:   date,
			CreatedTime:   clock,
			LastLoginDate: date,
			LastLoginTime: clock,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User created", "userId": user.ID})
	}
}

// POST /login: stamp last login and return the profile.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UID string `json:"uid"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.UID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "UID required"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", input.UID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		date, clock := models.Stamp()
		if err := db.Model(&user).Updates(map[string]interface{}{
			"last_login_date": date,
			"last_login_time": clock,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update last login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
	}
}

// GET /users/:uid
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")

		var user models.User
		if err := db.First(&user, "id = ?", uid).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /users: newest first (admin).
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /users/:uid: profile update.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")

		var user models.User
		if err := db.First(&user, "id = ?", uid).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		if input.DisplayName != nil {
			user.DisplayName = *input.DisplayName
		}
		if input.PhoneNumber != nil {
			user.PhoneNumber = *input.PhoneNumber
		}
		if input.PhotoURL != nil {
			user.PhotoURL = *input.PhotoURL
		}
		if input.Address != nil {
			user.Address = *input.Address
		}
		user.UpdatedDate, user.UpdatedTime = models.Stamp()

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
	}
}
