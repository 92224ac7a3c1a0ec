package categoryControllers

import (
	"sync"
	"time"
)

// The category listing is the hottest read in the storefront, so the computed
// payload is held in a single process-wide cell for up to five minutes.
// Every category write clears the cell before reporting success, so readers
// see at worst a stale-but-valid listing, never a missed invalidation.
const cacheDuration = 5 * time.Minute

type listingCache struct {
	mu      sync.Mutex
	payload []CategoryListing
	stored  time.Time
	now     func() time.Time
}

var cache = &listingCache{now: time.Now}

func (c *listingCache) get() ([]CategoryListing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil || c.now().Sub(c.stored) >= cacheDuration {
		return nil, false
	}
	return c.payload, true
}

func (c *listingCache) put(payload []CategoryListing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	c.stored = c.now()
}

func (c *listingCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = nil
	c.stored = time.Time{}
}
