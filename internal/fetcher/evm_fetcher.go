// Package fetcher implements the per-chain-family NFT fetchers behind the
// port.NFTFetcher interface, plus the closed factory that selects between
// them.
package fetcher

import (
	"context"
	"fmt"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/client"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/normalize"
	"nft_tracker/internal/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// EVMFetcher pages through the EVM indexing provider using its opaque
// page-key cursor.
type EVMFetcher struct {
	client   client.AlchemyClient
	pageSize int
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewEVMFetcher creates an EVMFetcher. A non-positive rateLimit disables
// rate limiting.
func NewEVMFetcher(c client.AlchemyClient, pageSize int, rateLimit float64, burst int, logger *zap.Logger) *EVMFetcher {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}
	return &EVMFetcher{
		client:   c,
		pageSize: pageSize,
		limiter:  limiter,
		logger:   logger.Named("EVMFetcher"),
	}
}

// FetchForWallet follows the provider's page-key cursor to exhaustion. The
// first page error aborts the whole fetch; no partial results are returned.
func (f *EVMFetcher) FetchForWallet(ctx context.Context, wallet entity.Wallet) ([]entity.NFT, error) {
	var all []entity.NFT
	cursor := ""
	for {
		page, err := f.FetchPage(ctx, wallet, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if !page.HasMore || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	f.logger.Info("Fetched wallet NFTs",
		zap.String("address", wallet.Address),
		zap.String("chain", string(wallet.EVMChain)),
		zap.Int("count", len(all)))
	return all, nil
}

// FetchPage fetches and normalizes a single provider page.
func (f *EVMFetcher) FetchPage(ctx context.Context, wallet entity.Wallet, cursor string) (port.Page, error) {
	if wallet.Chain != entity.ChainFamilyEVM {
		return port.Page{}, fmt.Errorf("EVM fetcher cannot serve chain family %q", wallet.Chain)
	}
	if err := f.limiter.Wait(ctx); err != nil {
		return port.Page{}, fmt.Errorf("rate limiter wait aborted: %w", err)
	}

	resp, err := f.client.GetNFTsForOwner(ctx, wallet.EVMChain, wallet.Address, cursor, f.pageSize)
	if err != nil {
		metrics.FetchErrorsTotal.WithLabelValues("alchemy").Inc()
		return port.Page{}, err
	}
	metrics.FetchPagesTotal.WithLabelValues("alchemy").Inc()

	fetchedAt := time.Now().UTC()
	items := make([]entity.NFT, 0, len(resp.OwnedNFTs))
	for _, rec := range resp.OwnedNFTs {
		items = append(items, normalize.FromAlchemy(rec, wallet.ID, wallet.EVMChain, fetchedAt))
	}

	return port.Page{
		Items:      items,
		NextCursor: resp.PageKey,
		HasMore:    resp.PageKey != "",
	}, nil
}
