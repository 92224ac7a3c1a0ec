package orderControllers

import (
	"github.com/planet-of-health/pharmacy-api/models"
	"gorm.io/gorm"
)

// LineRef is an unpriced (medicine, quantity) pair coming from a cart or from
// the request body of a direct order.
type LineRef struct {
	MedicineID uint `json:"medicineId"`
	Quantity   int  `json:"quantity"`
}

// PricedLine is one order line with the price resolved against the catalog at
// checkout time.
type PricedLine struct {
	MedicineID uint    `json:"medicineId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
}

// CartSummary is the priced form of a line list. Dropped counts lines whose
// medicine no longer exists in the catalog.
type CartSummary struct {
	Lines    []PricedLine `json:"items"`
	Subtotal float64      `json:"subtotal"`
	Dropped  int          `json:"-"`
}

// PriceLines resolves every line against the catalog snapshot and sums the
// totals. Lines referencing a medicine that has disappeared from the catalog
// are dropped rather than failing the whole order.
func PriceLines(lines []LineRef, catalog map[uint]models.Medicine) CartSummary {
	var summary CartSummary
	for _, line := range lines {
		med, ok := catalog[line.MedicineID]
		if !ok {
			summary.Dropped++
			continue
		}

		price := med.EffectivePrice()
		total := price * float64(line.Quantity)
		summary.Lines = append(summary.Lines, PricedLine{
			MedicineID: med.ID,
			Name:       med.NameEN,
			Quantity:   line.Quantity,
			Price:      price,
			Total:      total,
		})
		summary.Subtotal += total
	}
	return summary
}

// ApplySurcharge is the WhatsApp-order arithmetic: 2% VAT added, 5% discount
// taken off the subtotal. Direct orders do not go through this.
func ApplySurcharge(subtotal float64) (vat, discount, grandTotal float64) {
	vat = subtotal * 0.02
	discount = subtotal * 0.05
	grandTotal = subtotal + vat - discount
	return vat, discount, grandTotal
}

// loadCatalog fetches every referenced medicine in one query and keys the
// result by id.
func loadCatalog(db *gorm.DB, lines []LineRef) (map[uint]models.Medicine, error) {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MedicineID)
	}

	var medicines []models.Medicine
	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Find(&medicines).Error; err != nil {
			return nil, err
		}
	}

	catalog := make(map[uint]models.Medicine, len(medicines))
	for _, m := range medicines {
		catalog[m.ID] = m
	}
	return catalog, nil
}
