package coingecko_common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/interfaces"
)

// GetApiBaseUrl returns the configured base URL. Without an explicit URL a Pro key
// selects the Pro API and anything else the public API.
func GetApiBaseUrl(cfg *config.CoinGeckoConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	if DetectKeyType(cfg.APIKey) == ProKey {
		log.Printf("CoinGecko: Using Pro API URL based on key type")
		return config.COINGECKO_PRO_URL
	}
	return cfg.GetBaseURL()
}

// FetchJSON executes the request built by rb and decodes the body into T. Every
// failure becomes a FetchError carrying the user-facing message.
func FetchJSON[T any](ctx context.Context, client *HTTPClient, rb *CoingeckoRequestBuilder, op, message string) interfaces.Result[T] {
	fail := func(err error) interfaces.Result[T] {
		fetchErr := &interfaces.FetchError{Op: op, Message: message, Err: err}
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			fetchErr.StatusCode = statusErr.StatusCode
		}
		return interfaces.Fail[T](fetchErr)
	}

	req, err := rb.Build(ctx)
	if err != nil {
		return fail(fmt.Errorf("error creating request: %w", err))
	}

	body, duration, err := client.ExecuteRequest(req)
	if err != nil {
		return fail(err)
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		log.Printf("%s: Error parsing JSON response for %s: %v", client.Opts.LogPrefix, op, err)
		return fail(fmt.Errorf("error parsing JSON: %w", err))
	}

	log.Printf("%s: %s succeeded in %.2fs (%.2f KB)", client.Opts.LogPrefix, op, duration.Seconds(), float64(len(body))/1024)
	return interfaces.Ok(value)
}
