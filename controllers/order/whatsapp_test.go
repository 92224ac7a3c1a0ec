package orderControllers

import (
	"testing"

	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhatsAppMessage(t *testing.T) {
	order := models.Order{
		ID:              42,
		UserName:        "Jane Doe",
		UserEmail:       "jane@example.com",
		UserPhone:       "+8801711111111",
		DeliveryAddress: "12 Green Road, Dhaka",
		Items: []models.OrderItem{
			{Name: "Paracetamol", Quantity: 2, Price: 5.00, Total: 10.00},
			{Name: "Ibuprofen", Quantity: 1, Price: 6.50, Total: 6.50},
		},
		Subtotal:   16.50,
		VAT:        0.33,
		Discount:   0.83,
		TotalPrice: 16.00,
		OrderDate:  "01/09/2026",
		OrderTime:  "10:15 AM",
	}

	msg := BuildWhatsAppMessage(order)

	assert.Contains(t, msg, "🛒 *NEW ORDER #42*")
	assert.Contains(t, msg, "Name: Jane Doe")
	assert.Contains(t, msg, "Phone: +8801711111111")
	assert.Contains(t, msg, "1. Paracetamol")
	assert.Contains(t, msg, "Qty: 2 × $5.00 = $10.00")
	assert.Contains(t, msg, "Qty: 1 × $6.50 = $6.50")
	assert.Contains(t, msg, "Subtotal: $16.50")
	assert.Contains(t, msg, "VAT (2%): $0.33")
	assert.Contains(t, msg, "Discount (5%): -$0.83")
	assert.Contains(t, msg, "*Grand Total: $16.00*")
	assert.Contains(t, msg, "📅 Order Date: 01/09/2026 10:15 AM")
}
