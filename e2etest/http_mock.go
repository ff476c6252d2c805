package e2etest

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/status-im/market-dashboard/interfaces"
)

// MockCoinGecko serves the subset of the CoinGecko API the dashboard calls
type MockCoinGecko struct {
	server *httptest.Server

	mu       sync.RWMutex
	coins    []interfaces.CoinSummary
	details  map[string]interfaces.CoinDetail
	failing  bool
	requests map[string]int
}

// NewMockCoinGecko starts a mock API preloaded with default market data
func NewMockCoinGecko() *MockCoinGecko {
	m := &MockCoinGecko{
		coins:    defaultCoins(),
		details:  defaultDetails(),
		requests: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/coins/markets", m.handleMarkets)
	mux.HandleFunc("/coins/", m.handleCoin)
	m.server = httptest.NewServer(mux)

	return m
}

// URL is the API base to put into coingecko.base_url
func (m *MockCoinGecko) URL() string {
	return m.server.URL
}

func (m *MockCoinGecko) Close() {
	m.server.Close()
}

// SetFailing makes every endpoint answer 500 until reset
func (m *MockCoinGecko) SetFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = failing
}

// SetCoins replaces the markets payload
func (m *MockCoinGecko) SetCoins(coins []interfaces.CoinSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coins = coins
}

// Requests returns how many times path was requested
func (m *MockCoinGecko) Requests(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requests[path]
}

func (m *MockCoinGecko) track(r *http.Request) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[r.URL.Path]++
	return m.failing
}

func (m *MockCoinGecko) handleMarkets(w http.ResponseWriter, r *http.Request) {
	if m.track(r) {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	m.mu.RLock()
	coins := m.coins
	m.mu.RUnlock()

	if r.URL.Query().Get("sparkline") != "true" {
		stripped := make([]interfaces.CoinSummary, len(coins))
		for i, coin := range coins {
			coin.SparklineIn7d = nil
			stripped[i] = coin
		}
		coins = stripped
	}

	writeJSON(w, coins)
}

func (m *MockCoinGecko) handleCoin(w http.ResponseWriter, r *http.Request) {
	if m.track(r) {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/coins/")

	m.mu.RLock()
	detail, ok := m.details[id]
	m.mu.RUnlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"coin not found"}`))
		return
	}

	writeJSON(w, detail)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Mock: failed to encode response: %v", err)
	}
}

func defaultCoins() []interfaces.CoinSummary {
	return []interfaces.CoinSummary{
		{
			ID: "bitcoin", Symbol: "btc", Name: "Bitcoin",
			CurrentPrice: 50000, PriceChangePercentage24h: 2.5, TotalVolume: 30e9, MarketCap: 1e12,
			SparklineIn7d: &interfaces.Sparkline{Price: []float64{48000, 49000, 50000}},
		},
		{
			ID: "ethereum", Symbol: "eth", Name: "Ethereum",
			CurrentPrice: 3000, PriceChangePercentage24h: -1.2, TotalVolume: 15e9, MarketCap: 4e11,
			SparklineIn7d: &interfaces.Sparkline{Price: []float64{3100, 3050, 3000}},
		},
		{
			ID: "tether", Symbol: "usdt", Name: "Tether",
			CurrentPrice: 1, PriceChangePercentage24h: 0.01, TotalVolume: 50e9, MarketCap: 1e11,
		},
	}
}

func defaultDetails() map[string]interfaces.CoinDetail {
	return map[string]interfaces.CoinDetail{
		"bitcoin": {
			ID: "bitcoin", Symbol: "btc", Name: "Bitcoin",
			MarketData: interfaces.CoinMarketData{
				CurrentPrice:             interfaces.USDValue{USD: 50000},
				PriceChangePercentage24h: 2.5,
				PriceChangePercentage7d:  5,
				PriceChangePercentage30d: -3,
				TotalVolume:              interfaces.USDValue{USD: 30e9},
				MarketCap:                interfaces.USDValue{USD: 1e12},
				Sparkline7d:              &interfaces.Sparkline{Price: []float64{48000, 49000, 50000}},
			},
		},
	}
}
