package storage

import (
	"fmt"
	"log"

	"github.com/status-im/market-dashboard/config"
)

//go:generate mockgen -destination=mocks/storage.go . Storage

// Storage is a string key-value store shared by every dashboard process that
// points at the same backend. A missing key is reported by found=false, not an error.
type Storage interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// NewStorage opens the backend selected by cfg.Driver
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.GetDriver() {
	case config.StorageDriverMemory:
		log.Printf("Storage: Using in-memory storage")
		return NewMemoryStorage(), nil
	case config.StorageDriverFile:
		log.Printf("Storage: Using file storage at %s", cfg.Path)
		return NewFileStorage(cfg.Path)
	case config.StorageDriverSQLite:
		log.Printf("Storage: Using sqlite storage at %s", cfg.Path)
		return NewSQLiteStorage(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
