package interfaces

import "strings"

// Sparkline holds historical price samples for a miniature trend chart
type Sparkline struct {
	Price []float64 `json:"price"`
}

// CoinSummary is one row of the CoinGecko /coins/markets response
type CoinSummary struct {
	ID                       string     `json:"id"`
	Symbol                   string     `json:"symbol"`
	Name                     string     `json:"name"`
	Image                    string     `json:"image"`
	CurrentPrice             float64    `json:"current_price"`
	PriceChangePercentage24h float64    `json:"price_change_percentage_24h"`
	TotalVolume              float64    `json:"total_volume"`
	MarketCap                float64    `json:"market_cap"`
	SparklineIn7d            *Sparkline `json:"sparkline_in_7d,omitempty"`
}

// SparklinePrices returns the 7-day samples or nil when the coin has none
func (c CoinSummary) SparklinePrices() []float64 {
	if c.SparklineIn7d == nil {
		return nil
	}
	return c.SparklineIn7d.Price
}

// MatchesQuery reports whether name or symbol contains query, ignoring case.
// An empty query matches every coin.
func (c CoinSummary) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Symbol), q)
}

// USDValue is a CoinGecko per-currency value object restricted to USD
type USDValue struct {
	USD float64 `json:"usd"`
}

// CoinImage carries the image references of a coin detail record
type CoinImage struct {
	Large string `json:"large"`
}

// CoinMarketData is the market_data block of /coins/{id}
type CoinMarketData struct {
	CurrentPrice             USDValue   `json:"current_price"`
	PriceChangePercentage24h float64    `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  float64    `json:"price_change_percentage_7d"`
	PriceChangePercentage30d float64    `json:"price_change_percentage_30d"`
	TotalVolume              USDValue   `json:"total_volume"`
	MarketCap                USDValue   `json:"market_cap"`
	Sparkline7d              *Sparkline `json:"sparkline_7d,omitempty"`
}

// CoinDetail is the subset of /coins/{id} used by the detail view
type CoinDetail struct {
	ID         string         `json:"id"`
	Symbol     string         `json:"symbol"`
	Name       string         `json:"name"`
	Image      CoinImage      `json:"image"`
	MarketData CoinMarketData `json:"market_data"`
}

// SparklinePrices returns the 7-day samples or nil when the detail has none
func (d CoinDetail) SparklinePrices() []float64 {
	if d.MarketData.Sparkline7d == nil {
		return nil
	}
	return d.MarketData.Sparkline7d.Price
}
