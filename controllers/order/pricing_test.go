package orderControllers

import (
	"testing"

	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(meds ...models.Medicine) map[uint]models.Medicine {
	catalog := make(map[uint]models.Medicine, len(meds))
	for _, m := range meds {
		catalog[m.ID] = m
	}
	return catalog
}

func TestPriceLinesUsesDiscountPriceWhenSet(t *testing.T) {
	catalog := catalogOf(
		models.Medicine{ID: 1, NameEN: "Paracetamol", Price: 10.00, DiscountPrice: 8.50},
		models.Medicine{ID: 2, NameEN: "Ibuprofen", Price: 6.00},
	)

	summary := PriceLines([]LineRef{
		{MedicineID: 1, Quantity: 2},
		{MedicineID: 2, Quantity: 3},
	}, catalog)

	require.Len(t, summary.Lines, 2)
	assert.Equal(t, 8.50, summary.Lines[0].Price)
	assert.Equal(t, 17.00, summary.Lines[0].Total)
	assert.Equal(t, 6.00, summary.Lines[1].Price)
	assert.Equal(t, 18.00, summary.Lines[1].Total)
	assert.InDelta(t, 35.00, summary.Subtotal, 1e-9)
	assert.Zero(t, summary.Dropped)
}

func TestPriceLinesZeroDiscountFallsBackToPrice(t *testing.T) {
	catalog := catalogOf(models.Medicine{ID: 7, NameEN: "Aspirin", Price: 4.25, DiscountPrice: 0})

	summary := PriceLines([]LineRef{{MedicineID: 7, Quantity: 1}}, catalog)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 4.25, summary.Lines[0].Price)
}

func TestPriceLinesDropsVanishedMedicines(t *testing.T) {
	catalog := catalogOf(models.Medicine{ID: 1, NameEN: "Paracetamol", Price: 10.00})

	summary := PriceLines([]LineRef{
		{MedicineID: 1, Quantity: 1},
		{MedicineID: 99, Quantity: 4},
	}, catalog)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, uint(1), summary.Lines[0].MedicineID)
	assert.Equal(t, 1, summary.Dropped)
	assert.InDelta(t, 10.00, summary.Subtotal, 1e-9)
}

func TestPriceLinesEmpty(t *testing.T) {
	summary := PriceLines(nil, catalogOf())

	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.Subtotal)
	assert.Zero(t, summary.Dropped)
}

func TestApplySurcharge(t *testing.T) {
	vat, discount, grandTotal := ApplySurcharge(100)

	assert.InDelta(t, 2.00, vat, 1e-9)
	assert.InDelta(t, 5.00, discount, 1e-9)
	assert.InDelta(t, 97.00, grandTotal, 1e-9)
}

func TestApplySurchargeZeroSubtotal(t *testing.T) {
	vat, discount, grandTotal := ApplySurcharge(0)

	assert.Zero(t, vat)
	assert.Zero(t, discount)
	assert.Zero(t, grandTotal)
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 8.50, models.Medicine{Price: 10, DiscountPrice: 8.50}.EffectivePrice())
	assert.Equal(t, 10.00, models.Medicine{Price: 10}.EffectivePrice())
}
