package coingecko_coins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailFixture = `{
	"id":"bitcoin","symbol":"btc","name":"Bitcoin",
	"image":{"thumb":"t","small":"s","large":"https://img/btc-large.png"},
	"market_data":{
		"current_price":{"usd":50000,"eur":46000},
		"price_change_percentage_24h":2.5,
		"price_change_percentage_7d":-4.1,
		"price_change_percentage_30d":12.25,
		"total_volume":{"usd":30000000000},
		"market_cap":{"usd":1000000000000},
		"sparkline_7d":{"price":[48000,49000,50000]}
	}
}`

func TestCoinRequestBuilder(t *testing.T) {
	rb := NewCoinRequestBuilder("https://api.coingecko.com/api/v3", "bitcoin").WithSparkline(true)

	parsed, err := url.Parse(rb.BuildURL())
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/coins/bitcoin", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "false", query.Get("localization"))
	assert.Equal(t, "false", query.Get("tickers"))
	assert.Equal(t, "false", query.Get("community_data"))
	assert.Equal(t, "false", query.Get("developer_data"))
	assert.Equal(t, "true", query.Get("sparkline"))
}

func TestCoinRequestBuilder_EscapesID(t *testing.T) {
	rb := NewCoinRequestBuilder("http://localhost/api/v3", "a/b c")
	assert.Contains(t, rb.BuildURL(), "/coins/a%2Fb%20c?")
}

func TestClient_FetchCoinDetail(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		_, _ = w.Write([]byte(detailFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/v3", "", cg.NewHTTPClient(cg.DefaultClientOptions(), nil, nil))
	result := client.FetchCoinDetail(context.Background(), "bitcoin")

	require.True(t, result.IsOk())
	assert.Equal(t, "/api/v3/coins/bitcoin", requestedPath)

	detail := result.Value
	assert.Equal(t, "Bitcoin", detail.Name)
	assert.Equal(t, "https://img/btc-large.png", detail.Image.Large)
	assert.Equal(t, 50000.0, detail.MarketData.CurrentPrice.USD)
	assert.Equal(t, -4.1, detail.MarketData.PriceChangePercentage7d)
	assert.Equal(t, 12.25, detail.MarketData.PriceChangePercentage30d)
	assert.Equal(t, 1e12, detail.MarketData.MarketCap.USD)
	assert.Equal(t, []float64{48000, 49000, 50000}, detail.SparklinePrices())
}

func TestClient_FetchCoinDetail_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"coin not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", cg.NewHTTPClient(cg.DefaultClientOptions(), nil, nil))
	result := client.FetchCoinDetail(context.Background(), "nope")

	require.False(t, result.IsOk())
	assert.Equal(t, ErrCoinDetail, result.Err.Message)
	assert.Equal(t, http.StatusNotFound, result.Err.StatusCode)

	_, err := result.Unwrap()
	assert.Error(t, err)
}
