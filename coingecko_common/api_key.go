package coingecko_common

import "strings"

// KeyType defines the API key type
type KeyType int

const (
	// NoKey means no API key is available
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

// DetectKeyType classifies a CoinGecko API key by its shape
func DetectKeyType(apiKey string) KeyType {
	if apiKey == "" {
		return NoKey
	}
	if strings.HasPrefix(apiKey, "demo_") ||
		strings.HasPrefix(apiKey, "CG-") ||
		strings.Contains(strings.ToLower(apiKey), "demo") {
		return DemoKey
	}
	return ProKey
}
