// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FetchPagesTotal counts provider pages fetched, per provider.
	FetchPagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nft_tracker_fetch_pages_total",
			Help: "Number of provider pages fetched.",
		},
		[]string{"provider"},
	)

	// FetchErrorsTotal counts failed provider calls, per provider.
	FetchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nft_tracker_fetch_errors_total",
			Help: "Number of failed provider calls.",
		},
		[]string{"provider"},
	)

	// WalletRefreshDuration observes how long a full wallet refresh takes.
	WalletRefreshDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nft_tracker_wallet_refresh_duration_seconds",
			Help:    "Duration of a full wallet refresh, fetch through store update.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"chain"},
	)

	// StoredNFTs tracks how many NFT records the store currently holds.
	StoredNFTs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nft_tracker_stored_nfts",
			Help: "Number of NFT records currently in the store.",
		},
	)
)

// MustRegisterMetrics registers all collectors with the default registry.
// Call once at process start.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		FetchPagesTotal,
		FetchErrorsTotal,
		WalletRefreshDuration,
		StoredNFTs,
	)
}
