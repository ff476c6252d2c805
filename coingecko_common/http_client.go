package coingecko_common

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Request statuses reported to IHttpStatusHandler
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusRateLimited = "rate_limited"
)

// IHttpStatusHandler is notified once per executed request
type IHttpStatusHandler interface {
	OnRequest(status string, duration time.Duration)
}

// ClientOptions configures the HTTP client
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "CoinGecko",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// HTTPStatusError is returned for any non-2xx response
type HTTPStatusError struct {
	StatusCode int
	RetryAfter string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("rate limit exceeded (status %d), retry after %s: %s", e.StatusCode, e.RetryAfter, e.Body)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// HTTPClient executes CoinGecko requests exactly once. Failures are returned to
// the caller; there is no retry and no backoff.
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
	// Limiter paces outbound requests; nil means unlimited
	Limiter *rate.Limiter
}

// NewHTTPClient creates a new HTTP client with connection and request timeouts
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler, limiter *rate.Limiter) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		Limiter:       limiter,
	}
}

// ExecuteRequest performs one round trip and returns the body of a 2xx response
func (c *HTTPClient) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(req.Context()); err != nil {
			c.report(StatusError, 0)
			return nil, 0, fmt.Errorf("rate limiter wait failed: %w", err)
		}
	}

	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		c.report(StatusError, requestDuration)
		return nil, requestDuration, fmt.Errorf("request failed after %.2fs: %w", requestDuration.Seconds(), err)
	}
	defer resp.Body.Close()

	body, err := processResponse(resp)
	if err != nil {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.report(StatusRateLimited, requestDuration)
		} else {
			c.report(StatusError, requestDuration)
		}
		log.Printf("%s: %s %s failed after %.2fs: %v", c.Opts.LogPrefix, req.Method, req.URL.Path, requestDuration.Seconds(), err)
		return nil, requestDuration, err
	}

	c.report(StatusSuccess, requestDuration)
	return body, requestDuration, nil
}

func (c *HTTPClient) report(status string, duration time.Duration) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status, duration)
	}
}

// processResponse reads the body of a successful response or builds an HTTPStatusError
func processResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			RetryAfter: resp.Header.Get("Retry-After"),
			Body:       string(body),
		}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return responseBody, nil
}
