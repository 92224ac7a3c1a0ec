package adminControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/planet-of-health/pharmacy-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// issueAdminJWT signs a 24h session token for the admin dashboard.
func issueAdminJWT(admin models.Admin) string {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"role":     "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signed
}

// POST /admin/login
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
			return
		}

		var admin models.Admin
		if err := db.First(&admin, "email = ?", req.Email).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"admin":   admin,
			"token":   issueAdminJWT(admin),
		})
	}
}

// POST /admin/create: first-time setup.
func CreateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
			return
		}

		var existing models.Admin
		err := db.First(&existing, "email = ?", req.Email).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check admin"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		date, clock := models.Stamp()
		admin := models.Admin{
			Email:       req.Email,
			Password:    string(hash),
			Name:        req.Name,
			Role:        "admin",
			CreatedDate: date,
			CreatedTime: clock,
		}
		if err := db.Create(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin created", "adminId": admin.ID})
	}
}

// PUT /admin/change-password/:id
func ChangeAdminPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both passwords required"})
			return
		}

		var admin models.Admin
		if err := db.First(&admin, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password incorrect"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		date, clock := models.Stamp()
		if err := db.Model(&admin).Updates(map[string]interface{}{
			"password":     string(hash),
			"updated_date": date,
			"updated_time": clock,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}
