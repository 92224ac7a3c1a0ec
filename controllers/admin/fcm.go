package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/planet-of-health/pharmacy-api/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaveFCMTokenRequest struct {
	AdminID uint   `json:"adminId"`
	Token   string `json:"token"`
}

type SendNotificationRequest struct {
	AdminID uint   `json:"adminId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// POST /admin/save-fcm-token
//
// One token row per admin. Re-registering from a new browser replaces
// the previous token rather than accumulating stale ones.
func SaveFCMToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveFCMTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.AdminID == 0 || req.Token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adminId and token are required"})
			return
		}

		date, clock := models.Stamp()
		row := models.FCMToken{
			AdminID:     req.AdminID,
			Token:       req.Token,
			UpdatedDate: date,
			UpdatedTime: clock,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "admin_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_date", "updated_time"}),
		}).Create(&row).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save FCM token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "FCM token saved"})
	}
}

// POST /send-notification: manual test push to a single admin device.
func SendNotification(db *gorm.DB, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.AdminID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adminId is required"})
			return
		}

		var row models.FCMToken
		if err := db.First(&row, "admin_id = ?", req.AdminID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "FCM token not found"})
			return
		}

		title := req.Title
		if title == "" {
			title = "New Order Received"
		}

		if notifier == nil || notifier.Messenger == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Push messaging is not configured"})
			return
		}

		if err := notifier.Messenger.Send(c.Request.Context(), row.Token, title, req.Body, nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
	}
}
