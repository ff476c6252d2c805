package coingecko_markets

import (
	"context"
	"log"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/interfaces"
)

const (
	// SearchPageSize is how many top coins a search request scans
	SearchPageSize = 50

	ErrMarketData = "Failed to fetch market data"
	ErrSearch     = "Failed to search coins"
)

// Client fetches ranked market pages and runs coin searches
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *cg.HTTPClient
	searchClient *cg.HTTPClient
}

// NewClient creates a markets client. Market pages and searches report to separate
// status handlers so they show up as separate services in metrics.
func NewClient(baseURL, apiKey string, httpClient, searchClient *cg.HTTPClient) *Client {
	if searchClient == nil {
		searchClient = httpClient
	}
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   httpClient,
		searchClient: searchClient,
	}
}

// FetchMarketData fetches one page of coins ordered by market cap, with 7-day sparklines
func (c *Client) FetchMarketData(ctx context.Context, page, perPage int) interfaces.Result[[]interfaces.CoinSummary] {
	rb := NewMarketRequestBuilder(c.baseURL).
		WithPerPage(perPage).
		WithPage(page).
		WithSparkline(true).
		WithPriceChangePercentage([]string{"24h"})
	rb.WithApiKey(c.apiKey)

	result := cg.FetchJSON[[]interfaces.CoinSummary](ctx, c.httpClient, rb.CoingeckoRequestBuilder, "markets", ErrMarketData)
	if result.IsOk() {
		log.Printf("CoinGecko: Fetched markets page %d with %d coins", page, len(result.Value))
	}
	return result
}

// SearchCoins scans the top SearchPageSize coins and keeps those whose name or
// symbol contains query. Coins outside that window are never found.
func (c *Client) SearchCoins(ctx context.Context, query string) interfaces.Result[[]interfaces.CoinSummary] {
	rb := NewMarketRequestBuilder(c.baseURL).
		WithPerPage(SearchPageSize).
		WithSparkline(false)
	rb.WithApiKey(c.apiKey)

	result := cg.FetchJSON[[]interfaces.CoinSummary](ctx, c.searchClient, rb.CoingeckoRequestBuilder, "search", ErrSearch)
	if !result.IsOk() {
		return result
	}

	return interfaces.Ok(FilterCoins(result.Value, query))
}

// FilterCoins returns the coins matching query in their original order
func FilterCoins(coins []interfaces.CoinSummary, query string) []interfaces.CoinSummary {
	filtered := make([]interfaces.CoinSummary, 0, len(coins))
	for _, coin := range coins {
		if coin.MatchesQuery(query) {
			filtered = append(filtered, coin)
		}
	}
	return filtered
}
