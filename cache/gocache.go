package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache is an in-memory Cache backed by go-cache
type GoCache struct {
	cache *cache.Cache
}

var _ Cache = (*GoCache)(nil)

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// Set stores value with the given timeout
// If timeout is 0, uses cache's default expiration
// If timeout is -1 (cache.NoExpiration), item never expires
func (gc *GoCache) Set(key string, value []byte, timeout time.Duration) {
	gc.cache.Set(key, value, timeout)
}

func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
