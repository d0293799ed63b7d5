package port

import (
	"context"

	"nft_tracker/internal/domain/entity"
)

// Page is one fetched page of normalized records plus the provider's
// continuation state.
type Page struct {
	Items      []entity.NFT
	NextCursor string
	HasMore    bool
}

// NFTFetcher pages through a hosted indexing provider for one chain family
// and returns unified records. Implementations normalize every record
// before returning it; a page error aborts the whole wallet fetch with no
// partial results.
type NFTFetcher interface {
	// FetchForWallet returns every NFT the address owns, following the
	// provider's pagination to exhaustion.
	FetchForWallet(ctx context.Context, wallet entity.Wallet) ([]entity.NFT, error)

	// FetchPage fetches a single page. An empty cursor requests the first
	// page; the cursor format is provider-specific and opaque to callers.
	FetchPage(ctx context.Context, wallet entity.Wallet, cursor string) (Page, error)
}
