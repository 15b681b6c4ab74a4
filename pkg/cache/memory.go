package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultMemoryBytes bounds a [MemoryCache] created with a non-positive
// size.
const DefaultMemoryBytes = 64 << 20

// MemoryCache is an in-process cache bounded by the total size of the
// stored artifacts. Writes are applied asynchronously and may be rejected
// by the admission policy, so a Get right after Set can miss.
type MemoryCache struct {
	store *ristretto.Cache[string, []byte]
}

// NewMemoryCache creates a cache holding at most maxBytes of data.
func NewMemoryCache(maxBytes int64) (*MemoryCache, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMemoryBytes
	}
	store, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		// Roughly ten counters per expected entry, assuming ~8 KiB artifacts.
		NumCounters: max(1024, maxBytes/8192*10),
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryCache{store: store}, nil
}

// Get retrieves a value.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := c.store.Get(key)
	return data, ok, nil
}

// Set stores a value with its length as cost.
func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	c.store.SetWithTTL(key, data, int64(len(data)), max(0, ttl))
	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.store.Del(key)
	return nil
}

// Wait blocks until buffered writes have been applied.
func (c *MemoryCache) Wait() { c.store.Wait() }

// Close stops the cache's background goroutines.
func (c *MemoryCache) Close() error {
	c.store.Close()
	return nil
}

var _ Cache = (*MemoryCache)(nil)
