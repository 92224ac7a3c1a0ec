package categoryControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingCacheHitWithinWindow(t *testing.T) {
	clock := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	c := &listingCache{now: func() time.Time { return clock }}

	c.put([]CategoryListing{{Name: "Painkillers"}})

	clock = clock.Add(4 * time.Minute)
	payload, ok := c.get()
	require.True(t, ok)
	require.Len(t, payload, 1)
	assert.Equal(t, "Painkillers", payload[0].Name)
}

func TestListingCacheExpiresAfterFiveMinutes(t *testing.T) {
	clock := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	c := &listingCache{now: func() time.Time { return clock }}

	c.put([]CategoryListing{{Name: "Painkillers"}})

	clock = clock.Add(5 * time.Minute)
	_, ok := c.get()
	assert.False(t, ok)
}

func TestListingCacheMissWhenEmpty(t *testing.T) {
	c := &listingCache{now: time.Now}

	_, ok := c.get()
	assert.False(t, ok)
}

func TestListingCacheClear(t *testing.T) {
	c := &listingCache{now: time.Now}
	c.put([]CategoryListing{{Name: "Vitamins"}})

	c.clear()

	_, ok := c.get()
	assert.False(t, ok)
}
