package coingecko_markets

import (
	"strconv"
	"strings"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

const (
	// Path of the markets endpoint relative to the versioned base URL
	MARKETS_API_PATH = "/coins/markets"

	// DefaultOrder ranks coins by market capitalization
	DefaultOrder = "market_cap_desc"
)

// MarketsRequestBuilder implements the Builder pattern for CoinGecko markets API requests
type MarketsRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewMarketRequestBuilder creates a new request builder for markets endpoint
func NewMarketRequestBuilder(baseURL string) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, MARKETS_API_PATH),
	}

	rb.WithCurrency("usd")
	rb.WithOrder(DefaultOrder)

	return rb
}

// WithPage adds page parameter for pagination
func (rb *MarketsRequestBuilder) WithPage(page int) *MarketsRequestBuilder {
	rb.With("page", strconv.Itoa(page))
	return rb
}

// WithPerPage adds per_page parameter
func (rb *MarketsRequestBuilder) WithPerPage(perPage int) *MarketsRequestBuilder {
	rb.With("per_page", strconv.Itoa(perPage))
	return rb
}

// WithOrder adds ordering parameter
func (rb *MarketsRequestBuilder) WithOrder(order string) *MarketsRequestBuilder {
	if order != "" {
		rb.With("order", order)
	}
	return rb
}

// WithSparkline sets the sparkline parameter. Both values are sent explicitly.
func (rb *MarketsRequestBuilder) WithSparkline(enabled bool) *MarketsRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}

// WithPriceChangePercentage adds price_change_percentage parameter
func (rb *MarketsRequestBuilder) WithPriceChangePercentage(percentages []string) *MarketsRequestBuilder {
	if len(percentages) > 0 {
		rb.With("price_change_percentage", strings.Join(percentages, ","))
	}
	return rb
}
