package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvBaseURL overrides coingecko.base_url
	EnvBaseURL = "COINGECKO_BASE_URL"
	// EnvAPIKey overrides coingecko.api_key
	EnvAPIKey = "COINGECKO_API_KEY"
	// EnvPort overrides listen_port
	EnvPort = "PORT"
)

type Config struct {
	ListenPort string          `yaml:"listen_port"`
	CoinGecko  CoinGeckoConfig `yaml:"coingecko"`
	Dashboard  DashboardConfig `yaml:"dashboard"`
	Favorites  FavoritesConfig `yaml:"favorites"`
	Storage    StorageConfig   `yaml:"storage"`
	WebSocket  WebSocketConfig `yaml:"websocket"`
}

// Default returns a configuration that works without a config file
func Default() *Config {
	return &Config{
		ListenPort: "8080",
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
	}
}

// LoadDotenv loads a .env file from the working directory if one exists.
// Variables already present in the environment are left untouched.
func LoadDotenv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("Config: failed to load %s: %v", path, err)
		}
	}
}

// LoadConfig reads a YAML file, applies environment overrides and validates the result.
// A missing file is not an error: defaults plus environment are used instead.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		log.Printf("Config: %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.CoinGecko.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.CoinGecko.APIKey = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		c.ListenPort = v
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.CoinGecko.Validate(); err != nil {
		return fmt.Errorf("coingecko: %w", err)
	}
	if err := c.Dashboard.Validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// GetListenPort returns the HTTP port, 8080 by default
func (c *Config) GetListenPort() string {
	if c.ListenPort != "" {
		return c.ListenPort
	}
	return "8080"
}
