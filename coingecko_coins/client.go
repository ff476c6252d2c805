package coingecko_coins

import (
	"context"
	"log"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/interfaces"
)

// ErrCoinDetail is shown when a detail request fails
const ErrCoinDetail = "Failed to fetch coin details"

// Client fetches the detail record of a single coin
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *cg.HTTPClient
}

// NewClient creates a coin detail client
func NewClient(baseURL, apiKey string, httpClient *cg.HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// FetchCoinDetail fetches /coins/{id} including the 7-day sparkline
func (c *Client) FetchCoinDetail(ctx context.Context, coinID string) interfaces.Result[interfaces.CoinDetail] {
	rb := NewCoinRequestBuilder(c.baseURL, coinID).WithSparkline(true)
	rb.WithApiKey(c.apiKey)

	result := cg.FetchJSON[interfaces.CoinDetail](ctx, c.httpClient, rb.CoingeckoRequestBuilder, "coin detail", ErrCoinDetail)
	if result.IsOk() {
		log.Printf("CoinGecko: Fetched details for %s", coinID)
	}
	return result
}
