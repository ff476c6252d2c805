package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// COINGECKO_PUBLIC_URL is the public API base including the version prefix
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com/api/v3"
	// COINGECKO_PRO_URL is the Pro API base including the version prefix
	COINGECKO_PRO_URL = "https://pro-api.coingecko.com/api/v3"
)

// CoinGeckoConfig configures the market data client
type CoinGeckoConfig struct {
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	// Outbound pacing. Zero requests per minute disables the limiter.
	RateLimit RateLimit `yaml:"rate_limit"`
	// DetailCacheTTL keeps coin detail responses in memory. Zero disables caching.
	DetailCacheTTL time.Duration `yaml:"detail_cache_ttl"`
}

// RateLimit represents a simple rpm + burst pair
type RateLimit struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

func (c *CoinGeckoConfig) Validate() error {
	if c.RateLimit.RateLimitPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must not be negative")
	}
	if c.DetailCacheTTL < 0 {
		return fmt.Errorf("detail_cache_ttl must not be negative")
	}
	if c.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %q must use http or https", c.BaseURL)
	}
	return nil
}

// GetBaseURL returns the configured base URL or the public API
func (c *CoinGeckoConfig) GetBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return COINGECKO_PUBLIC_URL
}

func (c *CoinGeckoConfig) GetConnectionTimeout() time.Duration {
	if c.ConnectionTimeout > 0 {
		return c.ConnectionTimeout
	}
	return 10 * time.Second
}

func (c *CoinGeckoConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return 30 * time.Second
}

// GetDetailCacheTTL returns the coin detail cache TTL; zero means no caching
func (c *CoinGeckoConfig) GetDetailCacheTTL() time.Duration {
	return c.DetailCacheTTL
}
