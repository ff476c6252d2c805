package config

import (
	"fmt"
	"time"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// StorageConfig selects the key-value backend that persists favorites
type StorageConfig struct {
	Driver string `yaml:"driver"`
	// Path is the JSON file for the file driver or the database file for sqlite
	Path string `yaml:"path"`
	// WatchInterval is how often the favorites key is polled for changes made by other processes
	WatchInterval time.Duration `yaml:"watch_interval"`
}

func (c *StorageConfig) Validate() error {
	switch c.GetDriver() {
	case StorageDriverMemory:
		return nil
	case StorageDriverFile, StorageDriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("path is required for driver %q", c.Driver)
		}
		return nil
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}
}

func (c *StorageConfig) GetDriver() string {
	if c.Driver != "" {
		return c.Driver
	}
	return StorageDriverMemory
}

func (c *StorageConfig) GetWatchInterval() time.Duration {
	if c.WatchInterval > 0 {
		return c.WatchInterval
	}
	return 2 * time.Second
}
