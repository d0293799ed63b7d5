package fetcher

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nft_tracker/internal/app/port"
	"nft_tracker/internal/client"
	"nft_tracker/internal/domain/entity"
	"nft_tracker/internal/normalize"
	"nft_tracker/internal/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SolanaFetcher pages through the DAS provider with a numeric page counter.
// A short page (fewer than pageSize items) is the end signal.
type SolanaFetcher struct {
	client   client.HeliusClient
	pageSize int
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewSolanaFetcher creates a SolanaFetcher. A non-positive rateLimit
// disables rate limiting.
func NewSolanaFetcher(c client.HeliusClient, pageSize int, rateLimit float64, burst int, logger *zap.Logger) *SolanaFetcher {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}
	return &SolanaFetcher{
		client:   c,
		pageSize: pageSize,
		limiter:  limiter,
		logger:   logger.Named("SolanaFetcher"),
	}
}

// FetchForWallet pages from page 1 until a short page arrives. The first
// page error aborts the whole fetch; no partial results are returned.
func (f *SolanaFetcher) FetchForWallet(ctx context.Context, wallet entity.Wallet) ([]entity.NFT, error) {
	var all []entity.NFT
	cursor := ""
	for {
		page, err := f.FetchPage(ctx, wallet, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	f.logger.Info("Fetched wallet NFTs",
		zap.String("address", wallet.Address),
		zap.Int("count", len(all)))
	return all, nil
}

// FetchPage fetches one DAS page. The cursor is the stringified 1-based
// page number; empty means the first page.
func (f *SolanaFetcher) FetchPage(ctx context.Context, wallet entity.Wallet, cursor string) (port.Page, error) {
	if wallet.Chain != entity.ChainFamilySolana {
		return port.Page{}, fmt.Errorf("Solana fetcher cannot serve chain family %q", wallet.Chain)
	}

	pageNum := 1
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 1 {
			return port.Page{}, fmt.Errorf("malformed Solana page cursor %q", cursor)
		}
		pageNum = parsed
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return port.Page{}, fmt.Errorf("rate limiter wait aborted: %w", err)
	}

	list, err := f.client.GetAssetsByOwner(ctx, wallet.Address, pageNum, f.pageSize)
	if err != nil {
		metrics.FetchErrorsTotal.WithLabelValues("helius").Inc()
		return port.Page{}, err
	}
	metrics.FetchPagesTotal.WithLabelValues("helius").Inc()

	fetchedAt := time.Now().UTC()
	items := make([]entity.NFT, 0, len(list.Items))
	for _, asset := range list.Items {
		items = append(items, normalize.FromHelius(asset, wallet.ID, fetchedAt))
	}

	hasMore := len(list.Items) == f.pageSize
	return port.Page{
		Items:      items,
		NextCursor: strconv.Itoa(pageNum + 1),
		HasMore:    hasMore,
	}, nil
}
