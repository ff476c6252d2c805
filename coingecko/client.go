package coingecko

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/status-im/market-dashboard/cache"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_coins"
	"github.com/status-im/market-dashboard/coingecko_markets"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
)

// Client implements interfaces.IMarketDataClient on top of the CoinGecko REST API.
// All endpoints share one outbound limiter; each reports to its own metrics service.
type Client struct {
	markets *coingecko_markets.Client
	coins   *coingecko_coins.Client

	// detailCache is nil when detail caching is disabled
	detailCache cache.Cache
	detailTTL   time.Duration
}

var _ interfaces.IMarketDataClient = (*Client)(nil)

// Option customizes the HTTP clients created by NewClient
type Option func(*cg.HTTPClient)

// WithTransport replaces the transport of every HTTP client, e.g. with a recorder in tests
func WithTransport(transport http.RoundTripper) Option {
	return func(c *cg.HTTPClient) {
		c.Client.Transport = transport
	}
}

// NewClient creates a CoinGecko client from configuration
func NewClient(cfg *config.CoinGeckoConfig, opts ...Option) *Client {
	baseURL := cg.GetApiBaseUrl(cfg)
	limiter := cg.NewRateLimiter(cfg.RateLimit)
	if limiter != nil {
		log.Printf("CoinGecko: Pacing requests at %d per minute", cfg.RateLimit.RateLimitPerMinute)
	}

	clientOpts := cg.DefaultClientOptions()
	clientOpts.ConnectionTimeout = cfg.GetConnectionTimeout()
	clientOpts.RequestTimeout = cfg.GetRequestTimeout()

	newHTTPClient := func(service string) *cg.HTTPClient {
		c := cg.NewHTTPClient(clientOpts, metrics.NewMetricsWriter(service), limiter)
		for _, opt := range opts {
			opt(c)
		}
		return c
	}

	client := &Client{
		markets: coingecko_markets.NewClient(baseURL, cfg.APIKey,
			newHTTPClient(metrics.ServiceMarkets), newHTTPClient(metrics.ServiceSearch)),
		coins:     coingecko_coins.NewClient(baseURL, cfg.APIKey, newHTTPClient(metrics.ServiceCoins)),
		detailTTL: cfg.GetDetailCacheTTL(),
	}
	if client.detailTTL > 0 {
		client.detailCache = cache.NewGoCache(client.detailTTL, 2*client.detailTTL)
		log.Printf("CoinGecko: Caching coin details for %s", client.detailTTL)
	}
	return client
}

// FetchMarketData implements interfaces.IMarketDataClient
func (c *Client) FetchMarketData(ctx context.Context, page, perPage int) interfaces.Result[[]interfaces.CoinSummary] {
	return c.markets.FetchMarketData(ctx, page, perPage)
}

// FetchCoinDetail implements interfaces.IMarketDataClient
// Only successful responses are cached.
func (c *Client) FetchCoinDetail(ctx context.Context, coinID string) interfaces.Result[interfaces.CoinDetail] {
	if c.detailCache == nil {
		return c.coins.FetchCoinDetail(ctx, coinID)
	}

	key := "coin:" + coinID
	if detail, found := cache.GetJSON[interfaces.CoinDetail](c.detailCache, key); found {
		metrics.RecordDetailCacheHit(true)
		return interfaces.Ok(detail)
	}
	metrics.RecordDetailCacheHit(false)

	result := c.coins.FetchCoinDetail(ctx, coinID)
	if result.IsOk() {
		if err := cache.SetJSON(c.detailCache, key, result.Value, c.detailTTL); err != nil {
			log.Printf("CoinGecko: failed to cache %s: %v", coinID, err)
		}
	}
	return result
}

// SearchCoins implements interfaces.IMarketDataClient
func (c *Client) SearchCoins(ctx context.Context, query string) interfaces.Result[[]interfaces.CoinSummary] {
	return c.markets.SearchCoins(ctx, query)
}
