package cartControllers

import (
	"testing"

	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLineSumsExistingMedicine(t *testing.T) {
	items := mergeLine(nil, 5, 2)
	items = mergeLine(items, 5, 3)

	require.Len(t, items, 1)
	assert.Equal(t, uint(5), items[0].MedicineID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestMergeLineAppendsNewMedicine(t *testing.T) {
	items := []models.CartItem{{MedicineID: 1, Quantity: 2}}

	items = mergeLine(items, 2, 1)

	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].MedicineID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, uint(2), items[1].MedicineID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestMergeLinePreservesOtherLines(t *testing.T) {
	items := []models.CartItem{
		{MedicineID: 1, Quantity: 2},
		{MedicineID: 2, Quantity: 4},
	}

	items = mergeLine(items, 2, 1)

	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 5, items[1].Quantity)
}
