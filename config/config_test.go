package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "valid config",
			configYAML: `
listen_port: "9090"
coingecko:
  base_url: "http://localhost:4000/api/v3"
  request_timeout: 5s
  rate_limit:
    rate_limit_per_minute: 30
dashboard:
  per_page: 20
  refresh_interval: 30s
favorites:
  key: my_favorites
storage:
  driver: file
  path: /tmp/favorites.json
  watch_interval: 500ms
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9090", cfg.GetListenPort())
				assert.Equal(t, "http://localhost:4000/api/v3", cfg.CoinGecko.GetBaseURL())
				assert.Equal(t, 5*time.Second, cfg.CoinGecko.GetRequestTimeout())
				assert.Equal(t, 10*time.Second, cfg.CoinGecko.GetConnectionTimeout())
				assert.Equal(t, 30, cfg.CoinGecko.RateLimit.RateLimitPerMinute)
				assert.Equal(t, 20, cfg.Dashboard.GetPerPage())
				assert.Equal(t, 30*time.Second, cfg.Dashboard.GetRefreshInterval())
				assert.Equal(t, "my_favorites", cfg.Favorites.GetKey())
				assert.Equal(t, StorageDriverFile, cfg.Storage.GetDriver())
				assert.Equal(t, 500*time.Millisecond, cfg.Storage.GetWatchInterval())
			},
		},
		{
			name:       "empty config uses defaults",
			configYAML: `{}`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.GetListenPort())
				assert.Equal(t, COINGECKO_PUBLIC_URL, cfg.CoinGecko.GetBaseURL())
				assert.Equal(t, DefaultPerPage, cfg.Dashboard.GetPerPage())
				assert.Equal(t, DefaultRefreshInterval, cfg.Dashboard.GetRefreshInterval())
				assert.Equal(t, DefaultFavoritesKey, cfg.Favorites.GetKey())
				assert.Equal(t, StorageDriverMemory, cfg.Storage.GetDriver())
			},
		},
		{
			name: "invalid yaml",
			configYAML: `
dashboard:
  per_page: invalid
`,
			wantErr: true,
		},
		{
			name: "file driver without path",
			configYAML: `
storage:
  driver: file
`,
			wantErr: true,
		},
		{
			name: "unknown driver",
			configYAML: `
storage:
  driver: redis
`,
			wantErr: true,
		},
		{
			name: "unsupported base url scheme",
			configYAML: `
coingecko:
  base_url: "ftp://example.com"
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "config.yaml", tt.configYAML)

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, COINGECKO_PUBLIC_URL, cfg.CoinGecko.GetBaseURL())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://127.0.0.1:9999/api/v3")
	t.Setenv(EnvAPIKey, "CG-demo-key")
	t.Setenv(EnvPort, "7000")

	path := writeTempFile(t, "config.yaml", `
listen_port: "9090"
coingecko:
  base_url: "https://example.com/api/v3"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api/v3", cfg.CoinGecko.GetBaseURL())
	assert.Equal(t, "CG-demo-key", cfg.CoinGecko.APIKey)
	assert.Equal(t, "7000", cfg.GetListenPort())
}

func TestLoadDotenv(t *testing.T) {
	path := writeTempFile(t, ".env", "COINGECKO_BASE_URL=http://from-dotenv/api/v3\n")

	t.Setenv(EnvBaseURL, "")
	os.Unsetenv(EnvBaseURL)

	LoadDotenv(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "http://from-dotenv/api/v3", os.Getenv(EnvBaseURL))
}

func TestDashboardConfig_Validate(t *testing.T) {
	assert.NoError(t, (&DashboardConfig{PerPage: 10}).Validate())
	assert.Error(t, (&DashboardConfig{PerPage: 251}).Validate())
	assert.Error(t, (&DashboardConfig{RefreshInterval: -time.Second}).Validate())
}

func TestCoinGeckoConfig_DetailCacheTTL(t *testing.T) {
	cfg := &CoinGeckoConfig{}
	assert.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.GetDetailCacheTTL())

	cfg.DetailCacheTTL = 30 * time.Second
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.GetDetailCacheTTL())

	cfg.DetailCacheTTL = -time.Second
	assert.Error(t, cfg.Validate())
}
