package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/planet-of-health/pharmacy-api/notify"
	"gorm.io/gorm"
)

type WhatsAppOrderRequest struct {
	UserID string `json:"userId"`
}

// POST /generate-whatsapp-order: create an order from the user's current
// cart, apply the 2% VAT / 5% discount surcharge, clear the cart and return a
// pre-filled wa.me share link for the store's WhatsApp line.
func GenerateWhatsAppOrderHandler(db *gorm.DB, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WhatsAppOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", req.UserID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrCartEmpty.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		lines := make([]LineRef, 0, len(cart.Items))
		for _, item := range cart.Items {
			lines = append(lines, LineRef{MedicineID: item.MedicineID, Quantity: item.Quantity})
		}

		catalog, err := loadCatalog(db, lines)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load medicines"})
			return
		}
		summary := PriceLines(lines, catalog)
		vat, discount, grandTotal := ApplySurcharge(summary.Subtotal)

		order, err := assembleOrder(db, notifier, user, "", summary,
			models.OrderTypeWhatsApp, "🛒 New WhatsApp Order", vat, discount, grandTotal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate WhatsApp order"})
			return
		}

		message := BuildWhatsAppMessage(order)
		link := "https://wa.me/" + os.Getenv("ADMIN_WHATSAPP") + "?text=" + url.QueryEscape(message)

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"whatsappLink": link,
			"orderId":      order.ID,
			"orderSummary": gin.H{
				"items":      summary.Lines,
				"subtotal":   summary.Subtotal,
				"vat":        vat,
				"discount":   discount,
				"grandTotal": grandTotal,
			},
		})
	}
}

// BuildWhatsAppMessage renders the order as the text the customer shares with
// the pharmacy's WhatsApp line. Currency is formatted to two decimals here
// and nowhere earlier.
func BuildWhatsAppMessage(order models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *NEW ORDER #%d*\n\n", order.ID)
	b.WriteString("👤 *Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", order.UserName)
	fmt.Fprintf(&b, "Email: %s\n", order.UserEmail)
	fmt.Fprintf(&b, "Phone: %s\n\n", order.UserPhone)
	fmt.Fprintf(&b, "Address: %s\n\n", order.DeliveryAddress)

	b.WriteString("📦 *Order Items:*\n")
	b.WriteString("━━━━━━━━━━━━━━━━\n")
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Qty: %d × $%.2f = $%.2f\n\n", item.Quantity, item.Price, item.Total)
	}

	b.WriteString("━━━━━━━━━━━━━━━━\n")
	b.WriteString("💰 *Price Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", order.Subtotal)
	fmt.Fprintf(&b, "VAT (2%%): $%.2f\n", order.VAT)
	fmt.Fprintf(&b, "Discount (5%%): -$%.2f\n", order.Discount)
	b.WriteString("━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "*Grand Total: $%.2f*\n\n", order.TotalPrice)
	fmt.Fprintf(&b, "📅 Order Date: %s %s\n", order.OrderDate, order.OrderTime)
	fmt.Fprintf(&b, "🆔 Order ID: %d\n\n", order.ID)
	b.WriteString("✅ I want to confirm this order!")

	return b.String()
}
