package e2etest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint tests the functionality of the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	var health map[string]interface{}
	require.Equal(t, http.StatusOK, env.getJSON(t, "/health", &health))

	assert.Equal(t, "ok", health["status"], "Health status should be 'ok'")

	services, ok := health["services"].(map[string]interface{})
	require.True(t, ok, "Response should contain 'services' object")
	assert.Equal(t, "up", services["coingecko"])
	assert.Equal(t, float64(0), health["favorites"])
	assert.Equal(t, float64(0), health["websocket_clients"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	status, body := env.getBody(t, "/metrics")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "market_dashboard_coingecko_requests_total")
}
