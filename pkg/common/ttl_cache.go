package common

import (
	"runtime"
	"sync"
	"time"

	"k8s.io/klog/v2"
)

// cacheEntry pairs a cached value with its insertion time.
type cacheEntry[V any] struct {
	value V
	stamp int64
}

// TTLCache represents a super simple TTL cache mapping string keys to values.
type TTLCache[V any] struct {
	entries map[string]cacheEntry[V]
	mLock   sync.Mutex
}

// NewCache initializes a new TTL based cache that actively evicts old entries.
func NewCache[V any](ttl int, tick time.Duration) (*TTLCache[V], chan struct{}) {
	cache := &TTLCache[V]{entries: make(map[string]cacheEntry[V])}
	done := make(chan struct{})
	if tick <= 0 || ttl <= 0 || tick > MaxResultCacheTimeout || ttl > MaxResultCacheTTL {
		klog.Error("invalid timing values.")
		return cache, done
	}

	go func() {
		ticker := time.NewTicker(time.Millisecond * tick)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				cache.mLock.Lock()
				for k, v := range cache.entries {
					if now.UnixMilli()-v.stamp > int64(ttl) {
						delete(cache.entries, k)
					}
				}
				cache.mLock.Unlock()
			case <-done:
				return
			}
			runtime.Gosched()
		}
	}()
	return cache, done
}

// Put adds an entry to the Cache.
func (c *TTLCache[V]) Put(key string, value V) {
	c.mLock.Lock()
	c.entries[key] = cacheEntry[V]{value: value, stamp: time.Now().UnixMilli()}
	c.mLock.Unlock()
}

// Get returns the cached value for key, if it still exists.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mLock.Lock()
	defer c.mLock.Unlock()
	entry, ok := c.entries[key]
	return entry.value, ok
}

// IsIn checks if an entry still exists.
func (c *TTLCache[V]) IsIn(key string) bool {
	c.mLock.Lock()
	defer c.mLock.Unlock()
	_, ok := c.entries[key]
	return ok
}
