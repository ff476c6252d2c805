package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/market-dashboard/config"
)

// createTestConfig writes a config file into dir pointing at the mock API
func createTestConfig(dir, mockURL, port string) (string, error) {
	configContent := fmt.Sprintf(`
listen_port: "%s"

coingecko:
  base_url: "%s"
  request_timeout: 5s
  rate_limit:
    rate_limit_per_minute: 0   # no pacing against the mock

dashboard:
  per_page: 10
  refresh_interval: 1h         # loads in tests are explicit

favorites:
  key: crypto_favorites

storage:
  driver: file
  path: "%s"
  watch_interval: 100ms        # fast external change detection

websocket:
  ping_interval: 1s
`, port, mockURL, filepath.Join(dir, "favorites.json"))

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		return "", err
	}
	return configPath, nil
}

// loadTestConfig creates and loads the test configuration
func loadTestConfig(dir, mockURL, port string) (*config.Config, error) {
	configPath, err := createTestConfig(dir, mockURL, port)
	if err != nil {
		return nil, fmt.Errorf("failed to create test config: %w", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load test config: %w", err)
	}
	return cfg, nil
}
