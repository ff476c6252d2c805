package e2etest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/core"
	"github.com/stretchr/testify/require"
)

// TestEnv represents a running dashboard wired against a mock CoinGecko
type TestEnv struct {
	App           *core.App
	Config        *config.Config
	Mock          *MockCoinGecko
	Context       context.Context
	CancelFunc    context.CancelFunc
	ServerBaseURL string
	Port          string
}

// freePort asks the kernel for an unused TCP port
func freePort(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return strconv.Itoa(port)
}

// SetupTest starts every service and waits until the first market page is loaded
func SetupTest(t *testing.T) *TestEnv {
	// environment overrides would point the app away from the mock
	t.Setenv(config.EnvPort, "")
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvAPIKey, "")

	ctx, cancel := context.WithCancel(context.Background())
	mock := NewMockCoinGecko()
	port := freePort(t)

	cfg, err := loadTestConfig(t.TempDir(), mock.URL(), port)
	if err != nil {
		mock.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	app, err := core.Setup(ctx, cfg)
	if err != nil {
		mock.Close()
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := app.Registry.StartAll(ctx); err != nil {
		mock.Close()
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	env := &TestEnv{
		App:           app,
		Config:        cfg,
		Mock:          mock,
		Context:       ctx,
		CancelFunc:    cancel,
		ServerBaseURL: fmt.Sprintf("http://localhost:%s", port),
		Port:          port,
	}

	// Wait for the server and the initial load
	require.Eventually(t, func() bool {
		resp, err := http.Get(env.ServerBaseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK && !app.Controller.Snapshot().LastUpdated.IsZero()
	}, 5*time.Second, 50*time.Millisecond, "dashboard did not become ready")

	return env
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.App != nil {
		env.App.Registry.StopAll()
	}
	if env.Mock != nil {
		env.Mock.Close()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
}
