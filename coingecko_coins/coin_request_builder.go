package coingecko_coins

import (
	"net/url"
	"strconv"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

// COINS_API_PATH is the prefix of the coin detail endpoint
const COINS_API_PATH = "/coins/"

// CoinRequestBuilder builds /coins/{id} requests
type CoinRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewCoinRequestBuilder creates a builder for one coin. The id is path-escaped and
// the heavy optional sections of the response are switched off.
func NewCoinRequestBuilder(baseURL, coinID string) *CoinRequestBuilder {
	rb := &CoinRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, COINS_API_PATH+url.PathEscape(coinID)),
	}

	rb.With("localization", "false")
	rb.With("tickers", "false")
	rb.With("community_data", "false")
	rb.With("developer_data", "false")

	return rb
}

// WithSparkline sets the sparkline parameter
func (rb *CoinRequestBuilder) WithSparkline(enabled bool) *CoinRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}
