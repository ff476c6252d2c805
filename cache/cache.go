package cache

import (
	"encoding/json"
	"log"
	"time"
)

// Cache stores serialized values with a per-item TTL
type Cache interface {
	// Get returns the value stored under key if it has not expired
	Get(key string) ([]byte, bool)

	// Set stores value under key. A zero ttl uses the cache default.
	Set(key string, value []byte, ttl time.Duration)

	// Delete removes key
	Delete(key string)

	// ItemCount returns the number of stored items, expired ones included until cleanup
	ItemCount() int
}

// GetJSON decodes the value stored under key into T.
// A value that does not decode is evicted and reported as missing.
func GetJSON[T any](c Cache, key string) (T, bool) {
	var value T

	data, found := c.Get(key)
	if !found {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		log.Printf("Cache: dropping undecodable entry %s: %v", key, err)
		c.Delete(key)
		var zero T
		return zero, false
	}
	return value, true
}

// SetJSON encodes value and stores it under key
func SetJSON[T any](c Cache, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.Set(key, data, ttl)
	return nil
}
