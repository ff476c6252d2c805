package storage

import (
	"github.com/patrickmn/go-cache"
)

// MemoryStorage keeps values in a process-local go-cache instance. Entries never
// expire; the contents are lost when the process exits.
type MemoryStorage struct {
	cache *cache.Cache
}

// NewMemoryStorage creates an empty in-memory store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get returns the value stored under key
func (m *MemoryStorage) Get(key string) (string, bool, error) {
	value, found := m.cache.Get(key)
	if !found {
		return "", false, nil
	}
	str, ok := value.(string)
	if !ok {
		return "", false, nil
	}
	return str, true, nil
}

// Set stores value under key without expiration
func (m *MemoryStorage) Set(key, value string) error {
	m.cache.Set(key, value, cache.NoExpiration)
	return nil
}

// Remove deletes key; removing a missing key is not an error
func (m *MemoryStorage) Remove(key string) error {
	m.cache.Delete(key)
	return nil
}

// ItemCount returns the number of stored keys
func (m *MemoryStorage) ItemCount() int {
	return m.cache.ItemCount()
}

func (m *MemoryStorage) Close() error {
	m.cache.Flush()
	return nil
}
