package coingecko_common

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultUserAgent is sent with every CoinGecko request
const DefaultUserAgent = "Mozilla/5.0 Market-Dashboard"

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// CoingeckoRequestBuilder implements the Builder pattern for CoinGecko API requests.
// The base URL already contains the version prefix, e.g. https://api.coingecko.com/api/v3.
type CoingeckoRequestBuilder struct {
	baseURL   string
	apiPath   string
	params    map[string]string
	apiKey    string
	keyType   KeyType
	userAgent string
	headers   map[string]string
}

// NewCoingeckoRequestBuilder creates a new base request builder for CoinGecko endpoints
func NewCoingeckoRequestBuilder(baseURL, apiPath string) *CoingeckoRequestBuilder {
	rb := &CoingeckoRequestBuilder{
		baseURL:   baseURL,
		apiPath:   apiPath,
		params:    make(map[string]string),
		headers:   make(map[string]string),
		userAgent: DefaultUserAgent,
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *CoingeckoRequestBuilder) With(key, value string) *CoingeckoRequestBuilder {
	rb.params[key] = value
	return rb
}

// WithCurrency adds vs_currency parameter
func (rb *CoingeckoRequestBuilder) WithCurrency(currency string) *CoingeckoRequestBuilder {
	if currency != "" {
		rb.params["vs_currency"] = currency
	}
	return rb
}

// WithApiKey sets the API key; its type decides the query parameter name
func (rb *CoingeckoRequestBuilder) WithApiKey(apiKey string) *CoingeckoRequestBuilder {
	if apiKey != "" {
		rb.apiKey = apiKey
		rb.keyType = DetectKeyType(apiKey)
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *CoingeckoRequestBuilder) WithHeader(name, value string) *CoingeckoRequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *CoingeckoRequestBuilder) WithUserAgent(userAgent string) *CoingeckoRequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL; query parameters are encoded sorted by key
func (rb *CoingeckoRequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}

	switch rb.keyType {
	case ProKey:
		query.Add("x_cg_pro_api_key", rb.apiKey)
	case DemoKey:
		query.Add("x_cg_demo_api_key", rb.apiKey)
	}

	queryString := query.Encode()
	if queryString == "" {
		return fullPath
	}
	return fmt.Sprintf("%s?%s", fullPath, queryString)
}

// Build creates an http.Request bound to ctx
func (rb *CoingeckoRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
