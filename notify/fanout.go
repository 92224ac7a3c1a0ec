package notify

import (
	"context"
	"log"

	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

// Notifier fans notifications out to every registered admin device.
type Notifier struct {
	DB        *gorm.DB
	Messenger Messenger
}

// NotifyAdmins loads every registered admin token and attempts one delivery
// per token. It never returns an error: order placement must not fail because
// a dashboard device fell off.
func (n *Notifier) NotifyAdmins(ctx context.Context, title, body string, data map[string]string) int {
	if n == nil || n.Messenger == nil {
		return 0
	}

	var tokens []models.FCMToken
	if err := n.DB.Find(&tokens).Error; err != nil {
		log.Printf("❌ Failed to load admin FCM tokens: %v", err)
		return 0
	}

	return SendToTokens(ctx, n.Messenger, tokens, title, body, data)
}

// SendToTokens attempts delivery per token. Each attempt stands on its own:
// a failure is logged and the loop moves to the next token.
func SendToTokens(ctx context.Context, m Messenger, tokens []models.FCMToken, title, body string, data map[string]string) int {
	sent := 0
	for _, t := range tokens {
		if err := m.Send(ctx, t.Token, title, body, data); err != nil {
			log.Printf("❌ FCM send to admin %d failed: %v", t.AdminID, err)
			continue
		}
		sent++
	}
	return sent
}
