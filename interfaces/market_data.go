package interfaces

import "context"

//go:generate mockgen -destination=mocks/market_data.go . IMarketDataClient

// IMarketDataClient fetches market listings and coin details. Every call is a single
// round trip: no retries, no backoff, no caching.
type IMarketDataClient interface {
	// FetchMarketData returns one page of coins ordered by market cap, descending,
	// with 7-day sparklines and 24h change
	FetchMarketData(ctx context.Context, page, perPage int) Result[[]CoinSummary]

	// FetchCoinDetail returns the detail record of a single coin
	FetchCoinDetail(ctx context.Context, coinID string) Result[CoinDetail]

	// SearchCoins filters the top 50 coins by a case-insensitive substring of name or symbol
	SearchCoins(ctx context.Context, query string) Result[[]CoinSummary]
}
