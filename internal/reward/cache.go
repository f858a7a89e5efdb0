package reward

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// snapshotCache provides an in-memory LRU cache for per-user stat snapshots
// with time-based expiration. Writes through the reward and economy paths
// invalidate the owning user's entry.
type snapshotCache struct {
	lru *expirable.LRU[string, *domain.StatsSnapshot]
}

// newSnapshotCache creates a new snapshot cache with the specified size and TTL.
func newSnapshotCache(size int, ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[string, *domain.StatsSnapshot](size, nil, ttl),
	}
}

// Get retrieves a snapshot from the cache.
func (c *snapshotCache) Get(userID string) (*domain.StatsSnapshot, bool) {
	return c.lru.Get(userID)
}

// Set stores a snapshot in the cache.
func (c *snapshotCache) Set(userID string, snapshot *domain.StatsSnapshot) {
	c.lru.Add(userID, snapshot)
}

// Invalidate removes a user's snapshot from the cache.
func (c *snapshotCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
