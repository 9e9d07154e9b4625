package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-memory cache with per-entry TTLs and a total size cap.
// It backs rendered feed XML so repeated feed fetches skip the database.
type MemoryCache struct {
	mu          sync.RWMutex
	items       map[string]*cacheItem
	maxSize     int64
	currentSize int64
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

type cacheItem struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a new in-memory cache capped at maxSizeMB megabytes
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:   make(map[string]*cacheItem),
		maxSize: maxSizeMB * 1024 * 1024,
		stopCh:  make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.cleanupExpired()

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Now().After(item.expiry) {
		_ = mc.Delete(ctx, key)
		return nil, false
	}

	return item.value, true
}

// Set stores a value with a TTL, evicting the oldest entries when the
// size cap would be exceeded.
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	size := int64(len(value))

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if existing, ok := mc.items[key]; ok {
		mc.currentSize -= existing.size
	}

	for mc.maxSize > 0 && mc.currentSize+size > mc.maxSize && len(mc.items) > 0 {
		mc.evictOldestLocked()
	}

	mc.items[key] = &cacheItem{
		value:  value,
		expiry: time.Now().Add(ttl),
		size:   size,
	}
	mc.currentSize += size

	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if item, ok := mc.items[key]; ok {
		mc.currentSize -= item.size
		delete(mc.items, key)
	}
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.items = make(map[string]*cacheItem)
	mc.currentSize = 0
	return nil
}

// Stop terminates the background cleanup goroutine
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
}

func (mc *MemoryCache) evictOldestLocked() {
	var oldestKey string
	var oldestExpiry time.Time

	for key, item := range mc.items {
		if oldestKey == "" || item.expiry.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = item.expiry
		}
	}

	if oldestKey != "" {
		mc.currentSize -= mc.items[oldestKey].size
		delete(mc.items, oldestKey)
	}
}

func (mc *MemoryCache) cleanupExpired() {
	defer mc.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			mc.mu.Lock()
			for key, item := range mc.items {
				if now.After(item.expiry) {
					mc.currentSize -= item.size
					delete(mc.items, key)
				}
			}
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}
