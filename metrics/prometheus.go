package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_dashboard_"

// Service constants, one per CoinGecko endpoint family
const (
	ServiceMarkets = "markets"
	ServiceSearch  = "search"
	ServiceCoins   = "coins"
)

var (
	// Coingecko request counter
	// Cardinality: ~6 (3 services × 2 statuses)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to the Coingecko API",
		},
		[]string{"service", "status"},
	)

	// Request latency per service
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "coingecko_request_latency_seconds",
			Help: "Coingecko HTTP request latency by service",
		},
		[]string{"service"},
	)

	// Market refresh cycle duration, including failed cycles
	DataFetchCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "data_fetch_cycle_duration_seconds",
			Help: "Time taken to complete a market data refresh",
		},
	)

	// Responses dropped because a newer refresh was already applied
	StaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "stale_responses_total",
			Help: "Market responses discarded because a newer one was applied first",
		},
	)

	FavoritesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "favorites",
			Help: "Number of coins in the favorite set",
		},
	)

	// Coin detail cache lookups by result (hit, miss)
	DetailCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "detail_cache_lookups_total",
			Help: "Coin detail cache lookups by result",
		},
		[]string{"result"},
	)

	WebSocketClientsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "websocket_clients",
			Help: "Number of connected dashboard tabs",
		},
	)
)

// MetricsWriter records request metrics for one service
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// OnRequest records a finished Coingecko request with its status.
// It implements coingecko_common.IHttpStatusHandler.
func (mw *MetricsWriter) OnRequest(status string, duration time.Duration) {
	CoingeckoRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
	RequestLatencyHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordDataFetchCycle records the duration of one market refresh
func RecordDataFetchCycle(duration time.Duration) {
	DataFetchCycleDuration.Observe(duration.Seconds())
	log.Printf("Metrics: market refresh took %.2fs", duration.Seconds())
}

// RecordStaleResponse counts a discarded out-of-order response
func RecordStaleResponse() {
	StaleResponsesTotal.Inc()
}

// RecordFavoritesCount sets the favorites gauge
func RecordFavoritesCount(count int) {
	FavoritesGauge.Set(float64(count))
}

// RecordWebSocketClients sets the connected tabs gauge
func RecordWebSocketClients(count int) {
	WebSocketClientsGauge.Set(float64(count))
}

// RecordDetailCacheHit counts one coin detail cache lookup
func RecordDetailCacheHit(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	DetailCacheLookupsTotal.WithLabelValues(result).Inc()
}
