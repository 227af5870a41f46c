package cache

import (
	"context"
	"sync"

	"github.com/pricelens/backend/internal/domain"
)

// VectorCache is a thread-safe in-memory cache of title embeddings.
// Entries are append-only: a title's vector never changes, so there is no
// TTL and no eviction for the lifetime of the process.
type VectorCache struct {
	data  map[string][]float64
	mutex sync.RWMutex
}

// NewVectorCache creates a new in-memory vector cache
func NewVectorCache() *VectorCache {
	return &VectorCache{
		data: make(map[string][]float64),
	}
}

// Get retrieves the cached vector for a title
func (c *VectorCache) Get(ctx context.Context, title string) ([]float64, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	vec, exists := c.data[title]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	return vec, nil
}

// Set stores the vector for a title
func (c *VectorCache) Set(ctx context.Context, title string, vector []float64) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[title] = vector
	return nil
}

// Size returns the current number of cached vectors (for debugging/monitoring)
func (c *VectorCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all cached vectors
func (c *VectorCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string][]float64)
}

// VerdictCache is a thread-safe in-memory cache of generated verdict text,
// keyed by the offer-set fingerprint. Append-only like VectorCache:
// recomputing a verdict for the same offers yields the same text.
type VerdictCache struct {
	data  map[string]string
	mutex sync.RWMutex
}

// NewVerdictCache creates a new in-memory verdict cache
func NewVerdictCache() *VerdictCache {
	return &VerdictCache{
		data: make(map[string]string),
	}
}

// Get retrieves the cached verdict for an offer-set key
func (c *VerdictCache) Get(ctx context.Context, key string) (string, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	verdict, exists := c.data[key]
	if !exists {
		return "", domain.ErrCacheMiss
	}
	return verdict, nil
}

// Set stores the verdict for an offer-set key
func (c *VerdictCache) Set(ctx context.Context, key string, verdict string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = verdict
	return nil
}

// Size returns the current number of cached verdicts
func (c *VerdictCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
