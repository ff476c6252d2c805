package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCoinGecko(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/coins/markets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":50000},{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3000}]`))
	})
	mux.HandleFunc("/api/v3/coins/bitcoin", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"bitcoin","symbol":"btc","name":"Bitcoin","market_data":{"current_price":{"usd":50000}}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_Endpoints(t *testing.T) {
	server := newMockCoinGecko(t)
	client := NewClient(&config.CoinGeckoConfig{BaseURL: server.URL + "/api/v3"})
	ctx := context.Background()

	markets := client.FetchMarketData(ctx, 1, 10)
	require.True(t, markets.IsOk())
	assert.Len(t, markets.Value, 2)

	search := client.SearchCoins(ctx, "eth")
	require.True(t, search.IsOk())
	require.Len(t, search.Value, 1)
	assert.Equal(t, "ethereum", search.Value[0].ID)

	detail := client.FetchCoinDetail(ctx, "bitcoin")
	require.True(t, detail.IsOk())
	assert.Equal(t, 50000.0, detail.Value.MarketData.CurrentPrice.USD)

	missing := client.FetchCoinDetail(ctx, "unknown")
	require.False(t, missing.IsOk())
	assert.Equal(t, http.StatusNotFound, missing.Err.StatusCode)
}

func TestClient_ReportsMetricsPerService(t *testing.T) {
	server := newMockCoinGecko(t)
	client := NewClient(&config.CoinGeckoConfig{BaseURL: server.URL + "/api/v3"})

	before := testutil.ToFloat64(metrics.CoingeckoRequestsTotal.WithLabelValues(metrics.ServiceSearch, cg.StatusSuccess))
	client.SearchCoins(context.Background(), "btc")
	after := testutil.ToFloat64(metrics.CoingeckoRequestsTotal.WithLabelValues(metrics.ServiceSearch, cg.StatusSuccess))

	assert.Equal(t, before+1, after)
}

type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return http.DefaultTransport.RoundTrip(req)
}

func TestClient_WithTransport(t *testing.T) {
	server := newMockCoinGecko(t)
	transport := &countingTransport{}
	client := NewClient(&config.CoinGeckoConfig{BaseURL: server.URL + "/api/v3"}, WithTransport(transport))

	client.FetchMarketData(context.Background(), 1, 10)
	client.FetchCoinDetail(context.Background(), "bitcoin")

	assert.Equal(t, 2, transport.calls)
}

func TestClient_DetailCache(t *testing.T) {
	server := newMockCoinGecko(t)
	transport := &countingTransport{}
	client := NewClient(&config.CoinGeckoConfig{
		BaseURL:        server.URL + "/api/v3",
		DetailCacheTTL: time.Minute,
	}, WithTransport(transport))
	ctx := context.Background()

	hitsBefore := testutil.ToFloat64(metrics.DetailCacheLookupsTotal.WithLabelValues("hit"))

	first := client.FetchCoinDetail(ctx, "bitcoin")
	require.True(t, first.IsOk())
	second := client.FetchCoinDetail(ctx, "bitcoin")
	require.True(t, second.IsOk())

	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, 1, transport.calls, "second lookup should be served from cache")
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(metrics.DetailCacheLookupsTotal.WithLabelValues("hit")))

	// failures are not cached
	client.FetchCoinDetail(ctx, "unknown")
	client.FetchCoinDetail(ctx, "unknown")
	assert.Equal(t, 3, transport.calls)
}

func TestClient_DetailCacheDisabled(t *testing.T) {
	server := newMockCoinGecko(t)
	transport := &countingTransport{}
	client := NewClient(&config.CoinGeckoConfig{BaseURL: server.URL + "/api/v3"}, WithTransport(transport))

	client.FetchCoinDetail(context.Background(), "bitcoin")
	client.FetchCoinDetail(context.Background(), "bitcoin")
	assert.Equal(t, 2, transport.calls)
}
