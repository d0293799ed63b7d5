package port

import (
	"context"

	"nft_tracker/internal/domain/entity"
)

// RefreshResult reports the outcome of one wallet refresh inside a batch.
// Failures are carried per wallet rather than aborting the batch.
type RefreshResult struct {
	WalletID string `json:"walletId"`
	Address  string `json:"address"`
	NFTCount int    `json:"nftCount"`
	Error    string `json:"error,omitempty"`
}

// GalleryService orchestrates wallet refreshes: fetch, Farcaster enrichment,
// store replacement.
type GalleryService interface {
	// AddWallet validates and registers a new wallet, optionally refreshing
	// it immediately depending on configuration.
	AddWallet(ctx context.Context, wallet entity.Wallet) (entity.Wallet, error)

	// RefreshWallet re-fetches one wallet's NFTs and replaces its slice of
	// the store. Unless force is set, a refresh inside the configured
	// interval is skipped.
	RefreshWallet(ctx context.Context, walletID string, force bool) (int, error)

	// RefreshAll refreshes every tracked wallet with bounded concurrency.
	RefreshAll(ctx context.Context, force bool) []RefreshResult

	// Channels lists the distinct Farcaster channels across stored NFTs.
	Channels() []string
}
