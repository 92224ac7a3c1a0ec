package orderControllers

import (
	"testing"

	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelGuardAllowsOwnerPendingOrder(t *testing.T) {
	order := models.Order{UserID: "user-1", Status: models.OrderStatusPending}

	assert.NoError(t, CancelGuard(order, "user-1"))
}

func TestCancelGuardRejectsWrongOwner(t *testing.T) {
	order := models.Order{UserID: "user-1", Status: models.OrderStatusPending}

	err := CancelGuard(order, "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCancelGuardRejectsNonPendingStates(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		order := models.Order{UserID: "user-1", Status: status}

		err := CancelGuard(order, "user-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotPending)
	}
}

func TestMapOrderStatusCaseInsensitive(t *testing.T) {
	status, err := mapOrderStatus("CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, status)

	status, err = mapOrderStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, status)
}

func TestMapOrderStatusRejectsUnknown(t *testing.T) {
	_, err := mapOrderStatus("shipped")
	assert.Error(t, err)
}
