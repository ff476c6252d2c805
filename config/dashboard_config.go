package config

import (
	"fmt"
	"time"
)

const (
	DefaultPerPage         = 10
	DefaultRefreshInterval = 60 * time.Second
	DefaultFavoritesKey    = "crypto_favorites"
)

// DashboardConfig configures the page controller
type DashboardConfig struct {
	PerPage         int           `yaml:"per_page"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

func (c *DashboardConfig) Validate() error {
	if c.PerPage < 0 || c.PerPage > 250 {
		return fmt.Errorf("per_page must be between 1 and 250, got %d", c.PerPage)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must not be negative")
	}
	return nil
}

func (c *DashboardConfig) GetPerPage() int {
	if c.PerPage > 0 {
		return c.PerPage
	}
	return DefaultPerPage
}

func (c *DashboardConfig) GetRefreshInterval() time.Duration {
	if c.RefreshInterval > 0 {
		return c.RefreshInterval
	}
	return DefaultRefreshInterval
}

// FavoritesConfig names the storage key of the favorite set
type FavoritesConfig struct {
	Key string `yaml:"key"`
}

func (c *FavoritesConfig) GetKey() string {
	if c.Key != "" {
		return c.Key
	}
	return DefaultFavoritesKey
}

// WebSocketConfig configures the live update channel to browser tabs
type WebSocketConfig struct {
	PingInterval time.Duration `yaml:"ping_interval"`
	SendBuffer   int           `yaml:"send_buffer"`
}

func (c *WebSocketConfig) GetPingInterval() time.Duration {
	if c.PingInterval > 0 {
		return c.PingInterval
	}
	return 20 * time.Second
}

func (c *WebSocketConfig) GetSendBuffer() int {
	if c.SendBuffer > 0 {
		return c.SendBuffer
	}
	return 16
}
